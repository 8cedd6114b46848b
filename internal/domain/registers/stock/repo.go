package stock

import (
	"context"
	"time"

	"kahawa/internal/core/id"
)

// Repository computes stock positions from the ledgers.
type Repository interface {
	// Snapshot aggregates the full stock position. A non-nil asOf limits
	// the aggregation to documents dated on or before it.
	Snapshot(ctx context.Context, asOf *time.Time) ([]Snapshot, error)

	// OnHandForUpdate locks the given category rows (callers pass IDs in
	// sorted order) and returns their on-hand quantities. Must run inside
	// a transaction; the locks are held until it ends.
	OnHandForUpdate(ctx context.Context, categoryIDs []id.ID) (map[id.ID]int64, error)
}
