// Package domain provides core business logic interfaces and shared types.
package domain

import (
	"context"
	"time"

	"kahawa/internal/core/id"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search performs substring search on searchable fields
	Search string

	// IDs filters by specific IDs
	IDs []id.ID

	// DateFrom/DateTo restrict documents by business date (inclusive)
	DateFrom *time.Time
	DateTo   *time.Time

	// OrderBy specifies sorting (e.g., "name", "-date")
	OrderBy string

	// Pagination
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit: 50,
	}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for catalog entities.
// Catalog rows are deactivated, never physically deleted.
type CatalogRepository[T any] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Update modifies existing entity (with optimistic locking)
	Update(ctx context.Context, entity T) error

	// SetActive sets or clears the active flag (soft delete)
	SetActive(ctx context.Context, id id.ID, active bool) error

	// List retrieves entities; activeOnly excludes deactivated rows
	List(ctx context.Context, activeOnly bool) ([]T, error)

	// Exists checks if entity with given ID exists
	Exists(ctx context.Context, id id.ID) (bool, error)
}
