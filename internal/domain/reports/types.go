// Package reports provides period profitability and dashboard aggregates.
package reports

import (
	"time"

	"kahawa/internal/core/types"
	"kahawa/internal/domain/documents/expense"
)

// Period is an inclusive date range.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// PeriodSummary is the profitability of a period.
// netProfit = revenue - expenses. Revenue counts sold pieces only, at the
// rates frozen into sale entries; debtor amounts are informational and do
// not reduce revenue.
type PeriodSummary struct {
	Period Period `json:"period"`

	RevenueMinor   types.MinorUnits `json:"revenueMinor"`
	DebtorsMinor   types.MinorUnits `json:"debtorsMinor"`
	ExpensesMinor  types.MinorUnits `json:"expensesMinor"`
	NetProfitMinor types.MinorUnits `json:"netProfitMinor"`

	ProducedQty int64 `json:"producedQty"`
	SoldQty     int64 `json:"soldQty"`
	TakenQty    int64 `json:"takenQty"`
	ReturnedQty int64 `json:"returnedQty"`
	ReplacedQty int64 `json:"replacedQty"`

	ExpenseBreakdown []expense.TypeBreakdown `json:"expenseBreakdown"`
}

// DashboardStats is the front-page aggregate: today's and the current
// month's summaries plus the stock valuation.
type DashboardStats struct {
	Today PeriodSummary `json:"today"`
	Month PeriodSummary `json:"month"`

	StockOnHand     int64            `json:"stockOnHand"`
	StockValueMinor types.MinorUnits `json:"stockValueMinor"`
}
