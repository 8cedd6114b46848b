package dto

import (
	"time"

	"kahawa/internal/domain/documents/production"
)

// ProductionEntryRequest is one requested production line.
type ProductionEntryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	Quantity   int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateProductionRequest for recording a production batch.
type CreateProductionRequest struct {
	Date    string                   `json:"date"`
	Notes   string                   `json:"notes"`
	Entries []ProductionEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// ToInput converts the request to a service input.
func (r *CreateProductionRequest) ToInput() (production.Input, error) {
	date, err := ParseDate(r.Date, "date")
	if err != nil {
		return production.Input{}, err
	}

	in := production.Input{
		Date:    date,
		Notes:   r.Notes,
		Entries: make([]production.EntryInput, 0, len(r.Entries)),
	}

	for _, e := range r.Entries {
		catID, err := ParseID(e.CategoryID)
		if err != nil {
			return production.Input{}, err
		}
		in.Entries = append(in.Entries, production.EntryInput{
			CategoryID: catID,
			Quantity:   e.Quantity,
		})
	}

	return in, nil
}

// ProductionEntryResponse is the API shape of a production line.
type ProductionEntryResponse struct {
	EntryID     string `json:"entryId"`
	CategoryID  string `json:"categoryId"`
	Quantity    int64  `json:"quantity"`
	RateMinor   int64  `json:"rateMinor"`
	AmountMinor int64  `json:"amountMinor"`
}

// ProductionResponse is the API shape of a production batch.
type ProductionResponse struct {
	ID            string                    `json:"id"`
	Number        string                    `json:"number"`
	Date          time.Time                 `json:"date"`
	Notes         string                    `json:"notes,omitempty"`
	TotalQuantity int64                     `json:"totalQuantity"`
	TotalAmount   int64                     `json:"totalAmountMinor"`
	Entries       []ProductionEntryResponse `json:"entries,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

// FromProduction creates ProductionResponse from the domain entity.
func FromProduction(b *production.ProductionBatch) ProductionResponse {
	resp := ProductionResponse{
		ID:            b.ID.String(),
		Number:        b.Number,
		Date:          b.Date,
		Notes:         b.Notes,
		TotalQuantity: b.TotalQuantity(),
		TotalAmount:   int64(b.TotalAmount()),
		CreatedAt:     b.CreatedAt,
	}
	for _, e := range b.Entries {
		resp.Entries = append(resp.Entries, ProductionEntryResponse{
			EntryID:     e.EntryID.String(),
			CategoryID:  e.CategoryID.String(),
			Quantity:    e.Quantity,
			RateMinor:   int64(e.RateMinor),
			AmountMinor: int64(e.AmountMinor),
		})
	}
	return resp
}

// FromProductions maps a slice of batch headers.
func FromProductions(batches []*production.ProductionBatch) []ProductionResponse {
	out := make([]ProductionResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, FromProduction(b))
	}
	return out
}
