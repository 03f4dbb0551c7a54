package ports

import (
	"context"
	"errors"
	"water-distribution-service/internal/domain"
)

var ErrAreaNotFound = errors.New("area not found")

// Port: a boundary for retrieving demand areas and their geometry.
type AreaRepository interface {
	// Retrieve all areas of a layer ordered by name.
	ListAreas(ctx context.Context, kind domain.AreaKind) ([]domain.DemandArea, error)
	// Retrieve a single area by its normalized name. Returns ErrAreaNotFound
	// when no area matches.
	FindArea(ctx context.Context, kind domain.AreaKind, name string) (domain.DemandArea, error)
}
