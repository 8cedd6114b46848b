package dto

import (
	"time"

	"kahawa/internal/domain/catalogs/expensetype"
)

// ExpenseTypeResponse is the API shape of an expense type.
type ExpenseTypeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IsPredefined bool      `json:"isPredefined"`
	IsActive     bool      `json:"isActive"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromExpenseType creates ExpenseTypeResponse from the domain entity.
func FromExpenseType(t *expensetype.ExpenseType) ExpenseTypeResponse {
	return ExpenseTypeResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		IsPredefined: t.Predefined,
		IsActive:     t.Active,
		Version:      t.Version,
		CreatedAt:    t.CreatedAt,
	}
}

// FromExpenseTypes maps a slice of expense types.
func FromExpenseTypes(ts []*expensetype.ExpenseType) []ExpenseTypeResponse {
	out := make([]ExpenseTypeResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromExpenseType(t))
	}
	return out
}

// CreateExpenseTypeRequest for creating expense types.
type CreateExpenseTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateExpenseTypeRequest) ToEntity() *expensetype.ExpenseType {
	return expensetype.New(r.Name)
}

// UpdateExpenseTypeRequest for partial updates.
type UpdateExpenseTypeRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateExpenseTypeRequest) ToPatch() expensetype.Patch {
	return expensetype.Patch{
		Name:   r.Name,
		Active: r.IsActive,
	}
}
