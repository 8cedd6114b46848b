package reports

import (
	"context"
	"fmt"
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/types"
	"kahawa/internal/domain/documents/expense"
	"kahawa/internal/domain/documents/sale"
	"kahawa/internal/domain/registers/stock"
)

// SaleTotals provides period sale aggregates.
type SaleTotals interface {
	TotalsInPeriod(ctx context.Context, from, to time.Time) (sale.PeriodTotals, error)
}

// ProductionTotals provides period production aggregates.
type ProductionTotals interface {
	ProducedInPeriod(ctx context.Context, from, to time.Time) (int64, error)
}

// ExpenseTotals provides period expense aggregates.
type ExpenseTotals interface {
	TotalInPeriod(ctx context.Context, from, to time.Time) (types.MinorUnits, error)
	BreakdownByType(ctx context.Context, from, to time.Time) ([]expense.TypeBreakdown, error)
}

// StockReader provides the current stock overview.
type StockReader interface {
	Snapshot(ctx context.Context, asOf *time.Time) (*stock.Overview, error)
}

// Service assembles profitability reports from the ledgers.
type Service struct {
	sales      SaleTotals
	production ProductionTotals
	expenses   ExpenseTotals
	stock      StockReader
	now        func() time.Time
}

// NewService creates a new report service.
func NewService(sales SaleTotals, prod ProductionTotals, expenses ExpenseTotals, stockReader StockReader) *Service {
	return &Service{
		sales:      sales,
		production: prod,
		expenses:   expenses,
		stock:      stockReader,
		now:        time.Now,
	}
}

// Summary computes the profitability of an inclusive date range.
// Deleted ledger documents drop out of every figure: reports are always
// recomputed from the surviving history.
func (s *Service) Summary(ctx context.Context, period Period) (*PeriodSummary, error) {
	if period.From.IsZero() || period.To.IsZero() {
		return nil, apperror.NewValidation("report period requires both from and to dates")
	}
	if period.To.Before(period.From) {
		return nil, apperror.NewValidation("report period end precedes start").
			WithDetail("from", period.From.Format(time.DateOnly)).
			WithDetail("to", period.To.Format(time.DateOnly))
	}

	saleTotals, err := s.sales.TotalsInPeriod(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}

	producedQty, err := s.production.ProducedInPeriod(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("aggregate production: %w", err)
	}

	expenseTotal, err := s.expenses.TotalInPeriod(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("aggregate expenses: %w", err)
	}

	breakdown, err := s.expenses.BreakdownByType(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("expense breakdown: %w", err)
	}

	return &PeriodSummary{
		Period:           period,
		RevenueMinor:     saleTotals.RevenueMinor,
		DebtorsMinor:     saleTotals.DebtorsMinor,
		ExpensesMinor:    expenseTotal,
		NetProfitMinor:   saleTotals.RevenueMinor - expenseTotal,
		ProducedQty:      producedQty,
		SoldQty:          saleTotals.SoldQty,
		TakenQty:         saleTotals.TakenQty,
		ReturnedQty:      saleTotals.ReturnedQty,
		ReplacedQty:      saleTotals.ReplacedQty,
		ExpenseBreakdown: breakdown,
	}, nil
}

// Dashboard computes today's and the current month's summaries plus the
// stock valuation at current rates.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	today, err := s.Summary(ctx, Period{From: dayStart, To: dayEnd})
	if err != nil {
		return nil, err
	}

	month, err := s.Summary(ctx, Period{From: monthStart, To: dayEnd})
	if err != nil {
		return nil, err
	}

	overview, err := s.stock.Snapshot(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}

	return &DashboardStats{
		Today:           *today,
		Month:           *month,
		StockOnHand:     overview.TotalOnHand,
		StockValueMinor: overview.TotalValueMinor,
	}, nil
}
