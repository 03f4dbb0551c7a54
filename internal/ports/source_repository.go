package ports

import (
	"context"
	"water-distribution-service/internal/domain"
)

// Port: a boundary for retrieving water sources (wells) from a data source.
type SourceRepository interface {
	// Retrieve all sources with a usable yield. Sources whose yield could not
	// be parsed are reported with a zero yield.
	ListSources(ctx context.Context) ([]domain.Source, error)
}
