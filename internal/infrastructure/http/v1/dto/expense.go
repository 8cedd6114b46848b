package dto

import (
	"time"

	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/internal/domain/documents/expense"
)

// CreateExpenseRequest for recording an expense.
type CreateExpenseRequest struct {
	Date         string `json:"date"`
	TypeID       string `json:"typeId" binding:"required"`
	AmountMinor  int64  `json:"amountMinor" binding:"required,gt=0"`
	Description  string `json:"description"`
	Notes        string `json:"notes"`
	LinkedSaleID string `json:"linkedSaleId"`
}

// ToInput converts the request to a service input.
func (r *CreateExpenseRequest) ToInput() (expense.Input, error) {
	date, err := ParseDate(r.Date, "date")
	if err != nil {
		return expense.Input{}, err
	}

	typeID, err := ParseID(r.TypeID)
	if err != nil {
		return expense.Input{}, err
	}

	in := expense.Input{
		Date:        date,
		TypeID:      typeID,
		AmountMinor: types.MinorUnits(r.AmountMinor),
		Description: r.Description,
		Notes:       r.Notes,
	}

	if r.LinkedSaleID != "" {
		saleID, err := ParseID(r.LinkedSaleID)
		if err != nil {
			return expense.Input{}, err
		}
		in.LinkedSaleID = &saleID
	}

	return in, nil
}

// UpdateExpenseRequest for partial expense updates.
type UpdateExpenseRequest struct {
	Date         *string `json:"date"`
	TypeID       *string `json:"typeId"`
	AmountMinor  *int64  `json:"amountMinor" binding:"omitempty,gt=0"`
	Description  *string `json:"description"`
	Notes        *string `json:"notes"`
	LinkedSaleID *string `json:"linkedSaleId"`
}

// ToPatch converts the request to a domain patch.
// An empty linkedSaleId string clears the link.
func (r *UpdateExpenseRequest) ToPatch() (expense.Patch, error) {
	var patch expense.Patch

	if r.Date != nil {
		date, err := ParseDate(*r.Date, "date")
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}
	if r.TypeID != nil {
		typeID, err := ParseID(*r.TypeID)
		if err != nil {
			return patch, err
		}
		patch.TypeID = &typeID
	}
	if r.AmountMinor != nil {
		amount := types.MinorUnits(*r.AmountMinor)
		patch.AmountMinor = &amount
	}
	patch.Description = r.Description
	patch.Notes = r.Notes

	if r.LinkedSaleID != nil {
		if *r.LinkedSaleID == "" {
			nilID := id.Nil()
			patch.LinkedSaleID = &nilID
		} else {
			saleID, err := ParseID(*r.LinkedSaleID)
			if err != nil {
				return patch, err
			}
			patch.LinkedSaleID = &saleID
		}
	}

	return patch, nil
}

// ExpenseResponse is the API shape of an expense entry.
type ExpenseResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Date         time.Time `json:"date"`
	TypeID       string    `json:"typeId"`
	AmountMinor  int64     `json:"amountMinor"`
	Description  string    `json:"description,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	LinkedSaleID string    `json:"linkedSaleId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromExpense creates ExpenseResponse from the domain entity.
func FromExpense(e *expense.ExpenseEntry) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		Number:      e.Number,
		Date:        e.Date,
		TypeID:      e.TypeID.String(),
		AmountMinor: int64(e.AmountMinor),
		Description: e.Description,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
	if e.LinkedSaleID != nil {
		resp.LinkedSaleID = e.LinkedSaleID.String()
	}
	return resp
}

// FromExpenses maps a slice of expense entries.
func FromExpenses(es []*expense.ExpenseEntry) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromExpense(e))
	}
	return out
}
