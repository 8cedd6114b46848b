package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kahawa/internal/domain/reports"
)

func TestFromPeriodSummary_RendersMajorUnits(t *testing.T) {
	s := &reports.PeriodSummary{
		Period: reports.Period{
			From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		RevenueMinor:   123456,
		DebtorsMinor:   5,
		ExpensesMinor:  3450,
		NetProfitMinor: 120006,
	}

	resp := FromPeriodSummary(s)

	assert.Equal(t, "1234.56", resp.Revenue)
	assert.Equal(t, "0.05", resp.Debtors)
	assert.Equal(t, "34.50", resp.Expenses)
	assert.Equal(t, "1200.06", resp.NetProfit)
	assert.Equal(t, int64(123456), resp.RevenueMinor)
}

func TestFromDashboard_RendersStockValue(t *testing.T) {
	d := &reports.DashboardStats{
		StockOnHand:     -3,
		StockValueMinor: -150000,
	}

	resp := FromDashboard(d)

	assert.Equal(t, "-1500.00", resp.StockValue)
	assert.Equal(t, int64(-150000), resp.StockValueMinor)
}
