package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/types"
	"kahawa/internal/domain/documents/expense"
	"kahawa/internal/domain/documents/sale"
	"kahawa/internal/domain/registers/stock"
)

type fakeSales struct {
	totals sale.PeriodTotals
}

func (f *fakeSales) TotalsInPeriod(ctx context.Context, from, to time.Time) (sale.PeriodTotals, error) {
	return f.totals, nil
}

type fakeProduction struct {
	produced int64
}

func (f *fakeProduction) ProducedInPeriod(ctx context.Context, from, to time.Time) (int64, error) {
	return f.produced, nil
}

type fakeExpenses struct {
	total     types.MinorUnits
	breakdown []expense.TypeBreakdown
}

func (f *fakeExpenses) TotalInPeriod(ctx context.Context, from, to time.Time) (types.MinorUnits, error) {
	return f.total, nil
}

func (f *fakeExpenses) BreakdownByType(ctx context.Context, from, to time.Time) ([]expense.TypeBreakdown, error) {
	return f.breakdown, nil
}

type fakeStock struct {
	overview stock.Overview
}

func (f *fakeStock) Snapshot(ctx context.Context, asOf *time.Time) (*stock.Overview, error) {
	return &f.overview, nil
}

func newTestService() *Service {
	return NewService(
		&fakeSales{totals: sale.PeriodTotals{
			RevenueMinor: 100000,
			DebtorsMinor: 15000,
			SoldQty:      80,
			TakenQty:     100,
			ReturnedQty:  15,
			ReplacedQty:  5,
		}},
		&fakeProduction{produced: 120},
		&fakeExpenses{
			total: 35000,
			breakdown: []expense.TypeBreakdown{
				{TypeName: "Transport", AmountMinor: 20000},
				{TypeName: "Packaging", AmountMinor: 15000},
			},
		},
		&fakeStock{overview: stock.Overview{TotalOnHand: 35, TotalValueMinor: 910000}},
	)
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("net profit is revenue minus expenses", func(t *testing.T) {
		summary, err := svc.Summary(ctx, Period{From: from, To: to})
		require.NoError(t, err)

		assert.EqualValues(t, 100000, summary.RevenueMinor)
		assert.EqualValues(t, 35000, summary.ExpensesMinor)
		assert.EqualValues(t, 65000, summary.NetProfitMinor)
		assert.EqualValues(t, 15000, summary.DebtorsMinor)
		assert.Equal(t, int64(120), summary.ProducedQty)
		assert.Equal(t, int64(80), summary.SoldQty)
		assert.Len(t, summary.ExpenseBreakdown, 2)
	})

	t.Run("debtors do not reduce revenue", func(t *testing.T) {
		summary, err := svc.Summary(ctx, Period{From: from, To: to})
		require.NoError(t, err)
		assert.EqualValues(t, summary.RevenueMinor-summary.ExpensesMinor, summary.NetProfitMinor)
	})

	t.Run("missing period bounds rejected", func(t *testing.T) {
		_, err := svc.Summary(ctx, Period{From: from})
		require.Error(t, err)

		_, err = svc.Summary(ctx, Period{To: to})
		require.Error(t, err)
	})

	t.Run("inverted period rejected", func(t *testing.T) {
		_, err := svc.Summary(ctx, Period{From: to, To: from})
		require.Error(t, err)
	})
}

func TestService_Dashboard(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	svc.now = func() time.Time {
		return time.Date(2026, 8, 15, 13, 30, 0, 0, time.UTC)
	}

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(35), stats.StockOnHand)
	assert.EqualValues(t, 910000, stats.StockValueMinor)

	dayStart := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, dayStart, stats.Today.Period.From)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), stats.Month.Period.From)
	assert.True(t, stats.Today.Period.To.After(dayStart))
}
