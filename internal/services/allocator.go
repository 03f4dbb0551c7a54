package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"water-distribution-service/internal/domain"
)

// volumeEpsilon absorbs floating-point residue left after subtracting
// assigned volumes; a smaller remainder counts as met.
const volumeEpsilon = 1e-9

// DistanceFunc returns the distance in kilometers between two points.
type DistanceFunc func(a, b domain.Coordinates) float64

// AllocationRequest holds the inputs of one allocation run.
type AllocationRequest struct {
	Reference   domain.Coordinates
	Demand      float64
	ScenarioPct int
	Tanker      domain.TankerType
}

// Allocator covers a demand from the nearest sources first.
// It holds no mutable state and is safe for concurrent use.
type Allocator struct {
	Distance DistanceFunc
}

// NewAllocator returns an Allocator using the planar degree approximation.
func NewAllocator() *Allocator {
	return &Allocator{Distance: domain.PlanarDistanceKm}
}

type candidate struct {
	source     domain.Source
	available  float64
	distanceKm float64
}

// Allocate satisfies the demand using a greedy nearest-source procedure.
//
// Sources with a non-positive yield are skipped entirely. The remaining ones
// are visited in ascending distance (input order on ties), each contributing
// min(available, remaining) until the demand is met. Sources past that point
// are neither visited nor charged.
func (a *Allocator) Allocate(req AllocationRequest, sources []domain.Source) (*domain.AllocationResult, error) {
	if math.IsNaN(req.Demand) || math.IsInf(req.Demand, 0) || req.Demand < 0 {
		return nil, fmt.Errorf("allocate: %w (demand=%v)", domain.ErrInvalidDemand, req.Demand)
	}
	if req.ScenarioPct < 0 || req.ScenarioPct > 100 {
		return nil, fmt.Errorf("allocate: %w (scenario=%d)", domain.ErrInvalidScenario, req.ScenarioPct)
	}
	if err := req.Tanker.Validate(); err != nil {
		return nil, fmt.Errorf("allocate: %w", err)
	}

	result := &domain.AllocationResult{
		Demand:  req.Demand,
		Entries: []domain.AllocationEntry{},
	}
	if req.Demand == 0 {
		return result, nil
	}

	distance := a.Distance
	if distance == nil {
		distance = domain.PlanarDistanceKm
	}

	candidates := make([]candidate, 0, len(sources))
	for _, s := range sources {
		if !(s.YieldM3PerDay > 0) {
			continue
		}
		candidates = append(candidates, candidate{
			source:     s,
			available:  s.Available(req.ScenarioPct),
			distanceKm: distance(s.Location, req.Reference),
		})
	}

	// Stable so equal distances keep input order and runs are reproducible.
	slices.SortStableFunc(candidates, func(x, y candidate) int {
		return cmp.Compare(x.distanceKm, y.distanceKm)
	})

	remaining := req.Demand
	for _, c := range candidates {
		if remaining <= volumeEpsilon {
			break
		}

		assigned := min(c.available, remaining)
		if !(assigned > 0) {
			continue
		}

		tc, err := ComputeTripCost(assigned, c.distanceKm, req.Tanker)
		if err != nil {
			return nil, fmt.Errorf("allocate: source %q: %w", c.source.ID, err)
		}

		result.Entries = append(result.Entries, domain.AllocationEntry{
			SourceID:       c.source.ID,
			VolumeAssigned: assigned,
			Trips:          tc.Trips,
			Cost:           tc.Cost,
			Fuel:           tc.Fuel,
			DistanceKm:     c.distanceKm,
			SourceLocation: c.source.Location,
		})

		remaining -= assigned
		result.TotalTrips += tc.Trips
		result.TotalCost += tc.Cost
		result.TotalFuel += tc.Fuel
	}

	if remaining > volumeEpsilon {
		result.UnmetDemand = remaining
	}
	return result, nil
}
