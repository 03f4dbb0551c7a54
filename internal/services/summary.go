package services

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"slices"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/platform/obs"
	"water-distribution-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// Summary is the cost of covering every area of a layer independently.
// Rows are kept in area-name order; ranking helpers derive the other views.
type Summary struct {
	Level       domain.AreaKind
	ScenarioPct int
	Tanker      string
	Rows        []ports.SummaryRow
	Cached      bool
}

// Ranked returns rows ordered by total cost, most expensive first.
func (s *Summary) Ranked() []ports.SummaryRow {
	out := slices.Clone(s.Rows)
	slices.SortStableFunc(out, func(a, b ports.SummaryRow) int {
		return cmp.Compare(b.TotalCost, a.TotalCost)
	})
	return out
}

// Top returns the n most expensive areas.
func (s *Summary) Top(n int) []ports.SummaryRow {
	return head(s.Ranked(), n)
}

// Bottom returns the n cheapest areas, cheapest first.
func (s *Summary) Bottom(n int) []ports.SummaryRow {
	out := slices.Clone(s.Rows)
	slices.SortStableFunc(out, func(a, b ports.SummaryRow) int {
		return cmp.Compare(a.TotalCost, b.TotalCost)
	})
	return head(out, n)
}

// MostCostly returns the first area, in name order, with the highest cost.
func (s *Summary) MostCostly() (ports.SummaryRow, bool) {
	if len(s.Rows) == 0 {
		return ports.SummaryRow{}, false
	}
	best := s.Rows[0]
	for _, r := range s.Rows[1:] {
		if r.TotalCost > best.TotalCost {
			best = r
		}
	}
	return best, true
}

// LeastCostly returns the first area, in name order, with the lowest cost.
func (s *Summary) LeastCostly() (ports.SummaryRow, bool) {
	if len(s.Rows) == 0 {
		return ports.SummaryRow{}, false
	}
	best := s.Rows[0]
	for _, r := range s.Rows[1:] {
		if r.TotalCost < best.TotalCost {
			best = r
		}
	}
	return best, true
}

func head(rows []ports.SummaryRow, n int) []ports.SummaryRow {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}

// Summarize runs one allocation per area of the level that has a positive
// demand. Runs share a single read-only snapshot of the sources and execute
// concurrently, bounded by Workers.
func (p *Planner) Summarize(ctx context.Context, level domain.AreaKind, scenarioPct int, tankerName string) (_ *Summary, err error) {
	defer obs.Time(ctx, "planner.Summarize")(&err)

	if level != domain.AreaSector && level != domain.AreaDistrict {
		return nil, fmt.Errorf("summarize: level must be %q or %q, got %q", domain.AreaSector, domain.AreaDistrict, level)
	}
	if scenarioPct < 0 || scenarioPct > 100 {
		return nil, fmt.Errorf("summarize: %w (scenario=%d)", domain.ErrInvalidScenario, scenarioPct)
	}

	tanker, err := p.Tankers.Lookup(tankerName)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	key := ports.SummaryKey{Level: level, ScenarioPct: scenarioPct, Tanker: tanker.Name}
	if p.Cache != nil {
		rows, ok, err := p.Cache.Get(ctx, key)
		if err != nil {
			// A broken cache degrades to recomputation.
			log.Printf("summary cache read failed: %v", err)
		} else if ok {
			return &Summary{Level: level, ScenarioPct: scenarioPct, Tanker: tanker.Name, Rows: rows, Cached: true}, nil
		}
	}

	areas, err := p.Areas.ListAreas(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("summarize: list %s areas: %w", level, err)
	}

	sources, err := p.Sources.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize: list sources: %w", err)
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	// Each goroutine writes only its own slot.
	slots := make([]*ports.SummaryRow, len(areas))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, area := range areas {
		if !(area.DemandM3PerDay > 0) {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := p.Allocator.Allocate(AllocationRequest{
				Reference:   area.Centroid(),
				Demand:      area.DemandM3PerDay,
				ScenarioPct: scenarioPct,
				Tanker:      tanker,
			}, sources)
			if err != nil {
				return fmt.Errorf("summarize: %s %q: %w", level, area.Name, err)
			}

			slots[i] = &ports.SummaryRow{
				Name:        area.Name,
				Demand:      area.DemandM3PerDay,
				TotalCost:   res.TotalCost,
				TotalTrips:  res.TotalTrips,
				TotalFuel:   res.TotalFuel,
				UnmetDemand: res.UnmetDemand,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]ports.SummaryRow, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			rows = append(rows, *r)
		}
	}

	if p.Cache != nil {
		if err := p.Cache.Put(ctx, key, rows); err != nil {
			log.Printf("summary cache write failed: %v", err)
		}
	}

	return &Summary{Level: level, ScenarioPct: scenarioPct, Tanker: tanker.Name, Rows: rows}, nil
}
