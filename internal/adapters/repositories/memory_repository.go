package repositories

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/ports"
)

// MemoryRepository is an in-process implementation of the SourceRepository
// and AreaRepository ports over a fixed dataset. It is read-only after
// construction and safe for concurrent use.
type MemoryRepository struct {
	sources []domain.Source
	areas   map[domain.AreaKind][]domain.DemandArea
}

func NewMemoryRepository(sources []domain.Source, areas []domain.DemandArea) *MemoryRepository {
	m := &MemoryRepository{
		sources: slices.Clone(sources),
		areas:   make(map[domain.AreaKind][]domain.DemandArea),
	}
	for _, a := range areas {
		a.Name = domain.NormalizeName(a.Name)
		m.areas[a.Kind] = append(m.areas[a.Kind], a)
	}
	for k := range m.areas {
		slices.SortStableFunc(m.areas[k], func(a, b domain.DemandArea) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	return m
}

func (m *MemoryRepository) ListSources(ctx context.Context) ([]domain.Source, error) {
	return slices.Clone(m.sources), nil
}

func (m *MemoryRepository) ListAreas(ctx context.Context, kind domain.AreaKind) ([]domain.DemandArea, error) {
	return slices.Clone(m.areas[kind]), nil
}

func (m *MemoryRepository) FindArea(ctx context.Context, kind domain.AreaKind, name string) (domain.DemandArea, error) {
	key := domain.NormalizeName(name)
	for _, a := range m.areas[kind] {
		if a.Name == key {
			return a, nil
		}
	}
	return domain.DemandArea{}, fmt.Errorf("find area %s %q: %w", kind, key, ports.ErrAreaNotFound)
}
