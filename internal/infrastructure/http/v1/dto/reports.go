package dto

import (
	"kahawa/internal/core/types"
	"kahawa/internal/domain/reports"
)

// currencyDecimalPlaces is how many minor-unit digits make one major unit
// in rendered report figures.
const currencyDecimalPlaces = 2

func major(m types.MinorUnits) string {
	return m.ToMajor(currencyDecimalPlaces).StringFixed(currencyDecimalPlaces)
}

// ExpenseBreakdownResponse is one expense type's share of a period.
type ExpenseBreakdownResponse struct {
	TypeID      string `json:"typeId"`
	TypeName    string `json:"typeName"`
	AmountMinor int64  `json:"amountMinor"`
}

// PeriodSummaryResponse is the API shape of a period profitability report.
type PeriodSummaryResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	RevenueMinor   int64 `json:"revenueMinor"`
	DebtorsMinor   int64 `json:"debtorsMinor"`
	ExpensesMinor  int64 `json:"expensesMinor"`
	NetProfitMinor int64 `json:"netProfitMinor"`

	// Major-unit renderings of the figures above
	Revenue   string `json:"revenue"`
	Debtors   string `json:"debtors"`
	Expenses  string `json:"expenses"`
	NetProfit string `json:"netProfit"`

	ProducedQty int64 `json:"producedQty"`
	SoldQty     int64 `json:"soldQty"`
	TakenQty    int64 `json:"takenQty"`
	ReturnedQty int64 `json:"returnedQty"`
	ReplacedQty int64 `json:"replacedQty"`

	ExpenseBreakdown []ExpenseBreakdownResponse `json:"expenseBreakdown"`
}

// FromPeriodSummary creates PeriodSummaryResponse from the domain summary.
func FromPeriodSummary(s *reports.PeriodSummary) PeriodSummaryResponse {
	resp := PeriodSummaryResponse{
		From:             s.Period.From.Format("2006-01-02"),
		To:               s.Period.To.Format("2006-01-02"),
		RevenueMinor:     int64(s.RevenueMinor),
		DebtorsMinor:     int64(s.DebtorsMinor),
		ExpensesMinor:    int64(s.ExpensesMinor),
		NetProfitMinor:   int64(s.NetProfitMinor),
		Revenue:          major(s.RevenueMinor),
		Debtors:          major(s.DebtorsMinor),
		Expenses:         major(s.ExpensesMinor),
		NetProfit:        major(s.NetProfitMinor),
		ProducedQty:      s.ProducedQty,
		SoldQty:          s.SoldQty,
		TakenQty:         s.TakenQty,
		ReturnedQty:      s.ReturnedQty,
		ReplacedQty:      s.ReplacedQty,
		ExpenseBreakdown: make([]ExpenseBreakdownResponse, 0, len(s.ExpenseBreakdown)),
	}
	for _, b := range s.ExpenseBreakdown {
		resp.ExpenseBreakdown = append(resp.ExpenseBreakdown, ExpenseBreakdownResponse{
			TypeID:      b.TypeID.String(),
			TypeName:    b.TypeName,
			AmountMinor: int64(b.AmountMinor),
		})
	}
	return resp
}

// DashboardResponse is the front-page aggregate.
type DashboardResponse struct {
	Today           PeriodSummaryResponse `json:"today"`
	Month           PeriodSummaryResponse `json:"month"`
	StockOnHand     int64                 `json:"stockOnHand"`
	StockValueMinor int64                 `json:"stockValueMinor"`
	StockValue      string                `json:"stockValue"`
}

// FromDashboard creates DashboardResponse from the domain stats.
func FromDashboard(d *reports.DashboardStats) DashboardResponse {
	return DashboardResponse{
		Today:           FromPeriodSummary(&d.Today),
		Month:           FromPeriodSummary(&d.Month),
		StockOnHand:     d.StockOnHand,
		StockValueMinor: int64(d.StockValueMinor),
		StockValue:      major(d.StockValueMinor),
	}
}
