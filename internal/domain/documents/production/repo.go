package production

import (
	"context"
	"time"

	"kahawa/internal/core/id"
	"kahawa/internal/domain"
)

// Repository defines the interface for production batch persistence.
type Repository interface {
	// Create inserts a batch header and its entries
	Create(ctx context.Context, batch *ProductionBatch) error

	// GetByID retrieves a batch with its entries
	GetByID(ctx context.Context, batchID id.ID) (*ProductionBatch, error)

	// Delete removes a batch and its entries
	Delete(ctx context.Context, batchID id.ID) error

	// List retrieves batch headers (without entries) matching the filter,
	// newest first
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ProductionBatch], error)

	// ProducedInPeriod returns total pieces produced between from and to inclusive
	ProducedInPeriod(ctx context.Context, from, to time.Time) (int64, error)
}
