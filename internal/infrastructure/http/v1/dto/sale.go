package dto

import (
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/types"
	"kahawa/internal/domain/documents/sale"
)

// SaleEntryRequest is one requested sale line. Returned may be omitted:
// the server derives it as max(0, taken - sold - replaced).
type SaleEntryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	Taken      int64  `json:"taken" binding:"min=0"`
	Sold       int64  `json:"sold" binding:"min=0"`
	Returned   *int64 `json:"returned"`
	Replaced   int64  `json:"replaced" binding:"min=0"`
}

// CreateSaleRequest for recording a sale transaction.
type CreateSaleRequest struct {
	Date              string             `json:"date"`
	RouteName         string             `json:"routeName"`
	BuyerName         string             `json:"buyerName"`
	PaymentType       string             `json:"paymentType" binding:"required"`
	DebtorAmountMinor int64              `json:"debtorAmountMinor" binding:"min=0"`
	Notes             string             `json:"notes"`
	Entries           []SaleEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// ToInput converts the request to a service input.
func (r *CreateSaleRequest) ToInput() (sale.Input, error) {
	date, err := ParseDate(r.Date, "date")
	if err != nil {
		return sale.Input{}, err
	}

	paymentType := sale.PaymentType(r.PaymentType)
	if !paymentType.Valid() {
		return sale.Input{}, apperror.NewValidation("payment type must be cash or credit").
			WithDetail("value", r.PaymentType)
	}

	in := sale.Input{
		Date:              date,
		RouteName:         r.RouteName,
		BuyerName:         r.BuyerName,
		PaymentType:       paymentType,
		DebtorAmountMinor: types.MinorUnits(r.DebtorAmountMinor),
		Notes:             r.Notes,
		Entries:           make([]sale.EntryInput, 0, len(r.Entries)),
	}

	for _, e := range r.Entries {
		catID, err := ParseID(e.CategoryID)
		if err != nil {
			return sale.Input{}, err
		}
		in.Entries = append(in.Entries, sale.EntryInput{
			CategoryID: catID,
			Taken:      e.Taken,
			Sold:       e.Sold,
			Returned:   e.Returned,
			Replaced:   e.Replaced,
		})
	}

	return in, nil
}

// SaleEntryResponse is the API shape of a sale line.
type SaleEntryResponse struct {
	EntryID     string `json:"entryId"`
	CategoryID  string `json:"categoryId"`
	Taken       int64  `json:"taken"`
	Sold        int64  `json:"sold"`
	Returned    int64  `json:"returned"`
	Replaced    int64  `json:"replaced"`
	RateMinor   int64  `json:"rateMinor"`
	AmountMinor int64  `json:"amountMinor"`
}

// SaleResponse is the API shape of a sale transaction.
type SaleResponse struct {
	ID                string              `json:"id"`
	Number            string              `json:"number"`
	Date              time.Time           `json:"date"`
	RouteName         string              `json:"routeName,omitempty"`
	BuyerName         string              `json:"buyerName,omitempty"`
	PaymentType       string              `json:"paymentType"`
	DebtorAmountMinor int64               `json:"debtorAmountMinor"`
	TotalAmountMinor  int64               `json:"totalAmountMinor"`
	Notes             string              `json:"notes,omitempty"`
	Entries           []SaleEntryResponse `json:"entries,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// FromSale creates SaleResponse from the domain entity.
func FromSale(s *sale.SaleTransaction) SaleResponse {
	resp := SaleResponse{
		ID:                s.ID.String(),
		Number:            s.Number,
		Date:              s.Date,
		RouteName:         s.RouteName,
		BuyerName:         s.BuyerName,
		PaymentType:       string(s.PaymentType),
		DebtorAmountMinor: int64(s.DebtorAmountMinor),
		TotalAmountMinor:  int64(s.TotalAmountMinor),
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
	}
	for _, e := range s.Entries {
		resp.Entries = append(resp.Entries, SaleEntryResponse{
			EntryID:     e.EntryID.String(),
			CategoryID:  e.CategoryID.String(),
			Taken:       e.Taken,
			Sold:        e.Sold,
			Returned:    e.Returned,
			Replaced:    e.Replaced,
			RateMinor:   int64(e.RateMinor),
			AmountMinor: int64(e.AmountMinor),
		})
	}
	return resp
}

// FromSales maps a slice of transaction headers.
func FromSales(sales []*sale.SaleTransaction) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}
