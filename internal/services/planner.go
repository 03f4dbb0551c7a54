package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/metrics"
	"water-distribution-service/internal/platform/obs"
	"water-distribution-service/internal/ports"

	"github.com/google/uuid"
)

var ErrEmptySelection = errors.New("at least one district must be selected")

// Planner resolves demand areas and tanker types and runs allocations
// against a snapshot of the source repository.
type Planner struct {
	Sources   ports.SourceRepository
	Areas     ports.AreaRepository
	Tankers   *domain.TankerCatalog
	Allocator *Allocator
	// Cache is optional; summaries are recomputed on every call when nil.
	Cache ports.SummaryCache
	// Workers bounds concurrent allocations in a summary pass.
	Workers int
}

func NewPlanner(sources ports.SourceRepository, areas ports.AreaRepository, tankers *domain.TankerCatalog) *Planner {
	return &Planner{
		Sources:   sources,
		Areas:     areas,
		Tankers:   tankers,
		Allocator: NewAllocator(),
		Workers:   4,
	}
}

type AreaAllocationRequest struct {
	Kind        domain.AreaKind
	Name        string
	ScenarioPct int
	Tanker      string
}

type GroupAllocationRequest struct {
	Names       []string
	ScenarioPct int
	Tanker      string
}

// AreaAllocation is an allocation run together with the target it served.
type AreaAllocation struct {
	RunID       string
	Kind        domain.AreaKind
	Names       []string
	Reference   domain.Coordinates
	ScenarioPct int
	Tanker      domain.TankerType
	Result      *domain.AllocationResult
}

// Label names the target the way operators refer to it.
func (a *AreaAllocation) Label() string {
	switch a.Kind {
	case domain.AreaCombined:
		return "combination of " + strings.Join(a.Names, ", ")
	case domain.AreaDistrict:
		return "district " + strings.Join(a.Names, ", ")
	default:
		return "sector " + strings.Join(a.Names, ", ")
	}
}

// Message is the satisfied/unsatisfied summary shown next to the results.
func (a *AreaAllocation) Message() string {
	r := a.Result
	if !r.Satisfied() {
		return fmt.Sprintf(
			"%s requires %.2f m³/day. Not satisfied, %.2f m³/day missing.",
			a.Label(), r.Demand, r.UnmetDemand,
		)
	}
	return fmt.Sprintf(
		"%s requires %.2f m³/day. Satisfied with %d wells, %d trips, total cost S/ %.2f, fuel %.2f gal.",
		a.Label(), r.Demand, len(r.Entries), r.TotalTrips, r.TotalCost, r.TotalFuel,
	)
}

// AllocateArea covers the demand of a single sector or district from its centroid.
func (p *Planner) AllocateArea(ctx context.Context, req AreaAllocationRequest) (_ *AreaAllocation, err error) {
	defer obs.Time(ctx, "planner.AllocateArea")(&err)

	tanker, err := p.Tankers.Lookup(req.Tanker)
	if err != nil {
		return nil, fmt.Errorf("allocate area: %w", err)
	}

	area, err := p.Areas.FindArea(ctx, req.Kind, req.Name)
	if err != nil {
		return nil, fmt.Errorf("allocate area: find %s %q: %w", req.Kind, req.Name, err)
	}

	sources, err := p.Sources.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate area: list sources: %w", err)
	}

	ref := area.Centroid()
	result, err := p.Allocator.Allocate(AllocationRequest{
		Reference:   ref,
		Demand:      area.DemandM3PerDay,
		ScenarioPct: req.ScenarioPct,
		Tanker:      tanker,
	}, sources)
	if err != nil {
		return nil, fmt.Errorf("allocate area: %s %q: %w", req.Kind, area.Name, err)
	}

	out := &AreaAllocation{
		RunID:       uuid.NewString(),
		Kind:        area.Kind,
		Names:       []string{area.Name},
		Reference:   ref,
		ScenarioPct: req.ScenarioPct,
		Tanker:      tanker,
		Result:      result,
	}
	p.record(ctx, out)
	return out, nil
}

// AllocateGroup covers the summed demand of several combined-layer districts
// from the centroid of their union.
func (p *Planner) AllocateGroup(ctx context.Context, req GroupAllocationRequest) (_ *AreaAllocation, err error) {
	defer obs.Time(ctx, "planner.AllocateGroup")(&err)

	tanker, err := p.Tankers.Lookup(req.Tanker)
	if err != nil {
		return nil, fmt.Errorf("allocate group: %w", err)
	}

	seen := make(map[string]struct{}, len(req.Names))
	names := make([]string, 0, len(req.Names))
	for _, n := range req.Names {
		key := domain.NormalizeName(n)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, key)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("allocate group: %w", ErrEmptySelection)
	}

	demand := 0.0
	geoms := make([]domain.Geometry, 0, len(names))
	for _, n := range names {
		area, err := p.Areas.FindArea(ctx, domain.AreaCombined, n)
		if err != nil {
			return nil, fmt.Errorf("allocate group: find district %q: %w", n, err)
		}
		demand += area.DemandM3PerDay
		geoms = append(geoms, area.Geometry)
	}

	sources, err := p.Sources.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate group: list sources: %w", err)
	}

	ref := domain.CombinedCentroid(geoms)
	result, err := p.Allocator.Allocate(AllocationRequest{
		Reference:   ref,
		Demand:      demand,
		ScenarioPct: req.ScenarioPct,
		Tanker:      tanker,
	}, sources)
	if err != nil {
		return nil, fmt.Errorf("allocate group: %w", err)
	}

	out := &AreaAllocation{
		RunID:       uuid.NewString(),
		Kind:        domain.AreaCombined,
		Names:       names,
		Reference:   ref,
		ScenarioPct: req.ScenarioPct,
		Tanker:      tanker,
		Result:      result,
	}
	p.record(ctx, out)
	return out, nil
}

func (p *Planner) record(ctx context.Context, a *AreaAllocation) {
	r := a.Result

	metrics.ObserveAllocation(string(a.Kind), r.Satisfied(), r.UnmetDemand)
	log.Printf(
		"req_id=%s run_id=%s target=%q scenario=%d tanker=%q demand=%.2f wells=%d trips=%d cost=%.2f unmet=%.2f",
		obs.RequestID(ctx), a.RunID, a.Label(), a.ScenarioPct, a.Tanker.Name, r.Demand, len(r.Entries), r.TotalTrips, r.TotalCost, r.UnmetDemand,
	)
}
