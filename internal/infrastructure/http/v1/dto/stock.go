package dto

import (
	"time"

	"kahawa/internal/domain/registers/stock"
)

// StockLineResponse is one category's reconciled position.
type StockLineResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	WeightGrams  int64  `json:"weightGrams"`
	RateMinor    int64  `json:"rateMinor"`
	IsActive     bool   `json:"isActive"`
	Produced     int64  `json:"produced"`
	Taken        int64  `json:"taken"`
	Returned     int64  `json:"returned"`
	OnHand       int64  `json:"onHand"`
	ValueMinor   int64  `json:"valueMinor"`
}

// StockOverviewResponse is the full stock position with totals.
type StockOverviewResponse struct {
	AsOf            *time.Time          `json:"asOf,omitempty"`
	Lines           []StockLineResponse `json:"lines"`
	TotalOnHand     int64               `json:"totalOnHand"`
	TotalValueMinor int64               `json:"totalValueMinor"`
}

// FromStockOverview creates StockOverviewResponse from the domain overview.
func FromStockOverview(o *stock.Overview) StockOverviewResponse {
	resp := StockOverviewResponse{
		AsOf:            o.AsOf,
		Lines:           make([]StockLineResponse, 0, len(o.Lines)),
		TotalOnHand:     o.TotalOnHand,
		TotalValueMinor: int64(o.TotalValueMinor),
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, StockLineResponse{
			CategoryID:   l.CategoryID.String(),
			CategoryName: l.CategoryName,
			WeightGrams:  l.WeightGrams,
			RateMinor:    int64(l.RateMinor),
			IsActive:     l.Active,
			Produced:     l.Produced,
			Taken:        l.Taken,
			Returned:     l.Returned,
			OnHand:       l.OnHand,
			ValueMinor:   int64(l.ValueMinor),
		})
	}
	return resp
}
