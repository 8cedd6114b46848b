package sale

import (
	"context"
	"time"

	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/internal/domain"
)

// PeriodTotals aggregates sale figures over a date range.
type PeriodTotals struct {
	RevenueMinor types.MinorUnits `db:"revenue_minor"`
	DebtorsMinor types.MinorUnits `db:"debtors_minor"`
	SoldQty      int64            `db:"sold_qty"`
	TakenQty     int64            `db:"taken_qty"`
	ReturnedQty  int64            `db:"returned_qty"`
	ReplacedQty  int64            `db:"replaced_qty"`
}

// Repository defines the interface for sale transaction persistence.
type Repository interface {
	// Create inserts a transaction header and its entries
	Create(ctx context.Context, sale *SaleTransaction) error

	// GetByID retrieves a transaction with its entries
	GetByID(ctx context.Context, saleID id.ID) (*SaleTransaction, error)

	// Delete removes a transaction and its entries
	Delete(ctx context.Context, saleID id.ID) error

	// List retrieves transaction headers (without entries) matching the
	// filter, newest first
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*SaleTransaction], error)

	// TotalsInPeriod aggregates sale figures between from and to inclusive
	TotalsInPeriod(ctx context.Context, from, to time.Time) (PeriodTotals, error)
}
