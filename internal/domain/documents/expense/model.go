// Package expense provides the expense ledger.
package expense

import (
	"context"
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/entity"
	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
)

// ExpenseEntry is an append-only ledger document recording a single cost.
type ExpenseEntry struct {
	entity.Document

	// TypeID references the expense type catalog
	TypeID id.ID `db:"type_id" json:"typeId"`

	// AmountMinor is the expense amount in minor units, strictly positive
	AmountMinor types.MinorUnits `db:"amount_minor" json:"amountMinor"`

	// Description is an optional free-text note
	Description string `db:"description" json:"description,omitempty"`

	// LinkedSaleID optionally ties the expense to a sale trip
	// (e.g. transport cost of a route)
	LinkedSaleID *id.ID `db:"linked_sale_id" json:"linkedSaleId,omitempty"`
}

// New creates a new expense entry.
func New(date time.Time, typeID id.ID, amountMinor types.MinorUnits) *ExpenseEntry {
	return &ExpenseEntry{
		Document:    entity.NewDocument(date),
		TypeID:      typeID,
		AmountMinor: amountMinor,
	}
}

// Validate implements entity.Validatable.
func (e *ExpenseEntry) Validate(ctx context.Context) error {
	if err := e.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(e.TypeID) {
		return apperror.NewValidation("expense type is required").
			WithDetail("field", "typeId")
	}

	if e.AmountMinor <= 0 {
		return apperror.NewValidation("expense amount must be positive").
			WithDetail("field", "amountMinor").
			WithDetail("value", int64(e.AmountMinor))
	}

	return nil
}

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Date         *time.Time
	TypeID       *id.ID
	AmountMinor  *types.MinorUnits
	Description  *string
	Notes        *string
	LinkedSaleID *id.ID
}

// Apply copies the non-nil patch fields onto the entry.
func (p Patch) Apply(e *ExpenseEntry) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.TypeID != nil {
		e.TypeID = *p.TypeID
	}
	if p.AmountMinor != nil {
		e.AmountMinor = *p.AmountMinor
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.LinkedSaleID != nil {
		if id.IsNil(*p.LinkedSaleID) {
			e.LinkedSaleID = nil
		} else {
			e.LinkedSaleID = p.LinkedSaleID
		}
	}
}
