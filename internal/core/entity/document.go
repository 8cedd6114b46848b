package entity

import (
	"context"
	"time"

	"kahawa/internal/core/apperror"
)

// Document is the base type for ledger records.
// Examples: ProductionBatch, SaleTransaction, ExpenseEntry.
//
// Documents are append-only: created once, immutable thereafter except
// whole-document deletion. Derived stock figures are never stored on the
// document; they are recomputed from ledger history.
type Document struct {
	BaseEntity

	// Number is the human-readable document number, e.g. "PRD-2026-00042".
	// Assigned once when the document is recorded.
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Notes is an optional user comment
	Notes string `db:"notes" json:"notes,omitempty"`
}

// NewDocument creates a new Document with generated ID and the given business date.
func NewDocument(date time.Time) Document {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return Document{
		BaseEntity: NewBaseEntity(),
		Date:       date,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}
