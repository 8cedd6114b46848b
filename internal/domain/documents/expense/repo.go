package expense

import (
	"context"
	"time"

	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/internal/domain"
)

// TypeBreakdown is the total spent per expense type over a period.
type TypeBreakdown struct {
	TypeID      id.ID            `db:"type_id" json:"typeId"`
	TypeName    string           `db:"type_name" json:"typeName"`
	AmountMinor types.MinorUnits `db:"amount_minor" json:"amountMinor"`
}

// Repository defines the interface for expense persistence.
type Repository interface {
	// Create inserts an expense entry
	Create(ctx context.Context, e *ExpenseEntry) error

	// GetByID retrieves an expense entry
	GetByID(ctx context.Context, expenseID id.ID) (*ExpenseEntry, error)

	// Update rewrites an expense entry with optimistic version locking
	Update(ctx context.Context, e *ExpenseEntry) error

	// Delete removes an expense entry
	Delete(ctx context.Context, expenseID id.ID) error

	// List retrieves entries matching the filter, newest first
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ExpenseEntry], error)

	// TotalInPeriod returns total expense amount between from and to inclusive
	TotalInPeriod(ctx context.Context, from, to time.Time) (types.MinorUnits, error)

	// BreakdownByType aggregates expenses per type over a period
	BreakdownByType(ctx context.Context, from, to time.Time) ([]TypeBreakdown, error)
}
