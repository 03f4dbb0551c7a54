package ports

import (
	"context"
	"water-distribution-service/internal/domain"
)

// SummaryKey identifies a cached cost summary.
type SummaryKey struct {
	Level       domain.AreaKind
	ScenarioPct int
	Tanker      string
}

// SummaryRow is the cost outcome for one area in a summary pass.
type SummaryRow struct {
	Name        string  `json:"name"`
	Demand      float64 `json:"demand"`
	TotalCost   float64 `json:"total_cost"`
	TotalTrips  int     `json:"total_trips"`
	TotalFuel   float64 `json:"total_fuel"`
	UnmetDemand float64 `json:"unmet_demand"`
}

// Optional cache for summary passes. Implementations must be safe for
// concurrent use.
type SummaryCache interface {
	// Get returns the cached rows and true on a hit.
	Get(ctx context.Context, key SummaryKey) ([]SummaryRow, bool, error)
	Put(ctx context.Context, key SummaryKey, rows []SummaryRow) error
}
