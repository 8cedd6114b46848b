// Package production provides the production ledger.
// A production batch records pieces packaged on a given date, one entry per
// piece category. Posting a batch increases on-hand stock for each entry's
// category by the entry quantity.
package production

import (
	"context"
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/entity"
	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
)

// ProductionBatch is an append-only ledger document.
type ProductionBatch struct {
	entity.Document

	Entries []ProductionEntry `db:"-" json:"entries"`
}

// ProductionEntry is one line of a production batch.
// RateMinor is the category's unit rate captured at record time; AmountMinor
// is quantity * rate. Both are frozen: later rate changes do not touch them.
type ProductionEntry struct {
	EntryID     id.ID            `db:"id" json:"entryId"`
	BatchID     id.ID            `db:"batch_id" json:"-"`
	CategoryID  id.ID            `db:"category_id" json:"categoryId"`
	Quantity    int64            `db:"quantity" json:"quantity"`
	RateMinor   types.MinorUnits `db:"rate_minor" json:"rateMinor"`
	AmountMinor types.MinorUnits `db:"amount_minor" json:"amountMinor"`
	LineNumber  int              `db:"line_number" json:"-"`
}

// New creates a new production batch for the given business date.
func New(date time.Time) *ProductionBatch {
	return &ProductionBatch{
		Document: entity.NewDocument(date),
	}
}

// AddEntry appends a line, capturing the category's current rate and
// computing the line amount.
func (b *ProductionBatch) AddEntry(categoryID id.ID, quantity int64, rateMinor types.MinorUnits) {
	b.Entries = append(b.Entries, ProductionEntry{
		EntryID:     id.New(),
		BatchID:     b.ID,
		CategoryID:  categoryID,
		Quantity:    quantity,
		RateMinor:   rateMinor,
		AmountMinor: types.MinorUnits(quantity) * rateMinor,
		LineNumber:  len(b.Entries) + 1,
	})
}

// TotalQuantity returns the total pieces across all entries.
func (b *ProductionBatch) TotalQuantity() int64 {
	var total int64
	for _, e := range b.Entries {
		total += e.Quantity
	}
	return total
}

// TotalAmount returns the total valuation across all entries.
func (b *ProductionBatch) TotalAmount() types.MinorUnits {
	var total types.MinorUnits
	for _, e := range b.Entries {
		total += e.AmountMinor
	}
	return total
}

// Validate implements entity.Validatable.
func (b *ProductionBatch) Validate(ctx context.Context) error {
	if err := b.Document.Validate(ctx); err != nil {
		return err
	}

	if len(b.Entries) == 0 {
		return apperror.NewValidation("production batch must have at least one entry")
	}

	seen := make(map[id.ID]int, len(b.Entries))
	for i, e := range b.Entries {
		if id.IsNil(e.CategoryID) {
			return apperror.NewValidation("entry category is required").
				WithDetail("line", i+1)
		}
		if e.Quantity <= 0 {
			return apperror.NewValidation("entry quantity must be positive").
				WithDetail("line", i+1).
				WithDetail("quantity", e.Quantity)
		}
		if e.RateMinor < 0 {
			return apperror.NewValidation("entry rate must not be negative").
				WithDetail("line", i+1)
		}
		if prev, dup := seen[e.CategoryID]; dup {
			return apperror.NewValidation("duplicate category in batch").
				WithDetail("line", i+1).
				WithDetail("duplicateOf", prev)
		}
		seen[e.CategoryID] = i + 1
	}

	return nil
}
