// Package sale provides the sale ledger.
// A sale transaction records a seller trip: pieces taken out per category,
// and their disposition as sold, returned, or replaced. For every entry the
// balance taken = sold + returned + replaced must hold. Returned pieces go
// back into stock; replaced pieces do not.
package sale

import (
	"context"
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/entity"
	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
)

// PaymentType is how a sale was settled.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// Valid reports whether the payment type is a known value.
func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentCredit
}

// SaleTransaction is an append-only ledger document.
type SaleTransaction struct {
	entity.Document

	// RouteName is the free-text sales route or area
	RouteName string `db:"route_name" json:"routeName,omitempty"`

	// BuyerName is the free-text buyer, optional even for credit sales
	BuyerName string `db:"buyer_name" json:"buyerName,omitempty"`

	PaymentType PaymentType `db:"payment_type" json:"paymentType"`

	// DebtorAmountMinor is the outstanding amount for credit sales;
	// always zero for cash sales
	DebtorAmountMinor types.MinorUnits `db:"debtor_amount_minor" json:"debtorAmountMinor"`

	// TotalAmountMinor is the sum of entry amounts, computed server-side
	TotalAmountMinor types.MinorUnits `db:"total_amount_minor" json:"totalAmountMinor"`

	Entries []SaleEntry `db:"-" json:"entries"`
}

// SaleEntry is one line of a sale transaction.
// RateMinor is the category rate captured at transaction time and frozen.
// AmountMinor is sold * rate: only sold pieces earn revenue.
type SaleEntry struct {
	EntryID     id.ID            `db:"id" json:"entryId"`
	SaleID      id.ID            `db:"sale_id" json:"-"`
	CategoryID  id.ID            `db:"category_id" json:"categoryId"`
	Taken       int64            `db:"taken" json:"taken"`
	Sold        int64            `db:"sold" json:"sold"`
	Returned    int64            `db:"returned" json:"returned"`
	Replaced    int64            `db:"replaced" json:"replaced"`
	RateMinor   types.MinorUnits `db:"rate_minor" json:"rateMinor"`
	AmountMinor types.MinorUnits `db:"amount_minor" json:"amountMinor"`
	LineNumber  int              `db:"line_number" json:"-"`
}

// NetOut is the stock impact of the entry: pieces that left stock for good.
func (e SaleEntry) NetOut() int64 {
	return e.Taken - e.Returned
}

// DeriveReturned computes the returned count from the other three figures
// when the caller omits it: max(0, taken - sold - replaced).
func DeriveReturned(taken, sold, replaced int64) int64 {
	r := taken - sold - replaced
	if r < 0 {
		return 0
	}
	return r
}

// New creates a new sale transaction.
func New(date time.Time) *SaleTransaction {
	return &SaleTransaction{
		Document:    entity.NewDocument(date),
		PaymentType: PaymentCash,
	}
}

// AddEntry appends a line, computing the revenue amount from sold pieces.
func (t *SaleTransaction) AddEntry(categoryID id.ID, taken, sold, returned, replaced int64, rateMinor types.MinorUnits) {
	t.Entries = append(t.Entries, SaleEntry{
		EntryID:     id.New(),
		SaleID:      t.ID,
		CategoryID:  categoryID,
		Taken:       taken,
		Sold:        sold,
		Returned:    returned,
		Replaced:    replaced,
		RateMinor:   rateMinor,
		AmountMinor: types.MinorUnits(sold) * rateMinor,
		LineNumber:  len(t.Entries) + 1,
	})
}

// Normalize recomputes derived fields: total amount from entries, and
// debtor amount forced to zero for cash sales.
func (t *SaleTransaction) Normalize() {
	var total types.MinorUnits
	for _, e := range t.Entries {
		total += e.AmountMinor
	}
	t.TotalAmountMinor = total

	if t.PaymentType == PaymentCash {
		t.DebtorAmountMinor = 0
	}
}

// TakenByCategory aggregates taken quantities per category across entries.
func (t *SaleTransaction) TakenByCategory() map[id.ID]int64 {
	out := make(map[id.ID]int64, len(t.Entries))
	for _, e := range t.Entries {
		out[e.CategoryID] += e.Taken
	}
	return out
}

// Validate implements entity.Validatable.
func (t *SaleTransaction) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if !t.PaymentType.Valid() {
		return apperror.NewValidation("payment type must be cash or credit").
			WithDetail("field", "paymentType").
			WithDetail("value", string(t.PaymentType))
	}

	if t.DebtorAmountMinor < 0 {
		return apperror.NewValidation("debtor amount must not be negative").
			WithDetail("field", "debtorAmountMinor")
	}

	if len(t.Entries) == 0 {
		return apperror.NewValidation("sale must have at least one entry")
	}

	for i, e := range t.Entries {
		if id.IsNil(e.CategoryID) {
			return apperror.NewValidation("entry category is required").
				WithDetail("line", i+1)
		}
		if e.Taken < 0 || e.Sold < 0 || e.Returned < 0 || e.Replaced < 0 {
			return apperror.NewValidation("entry quantities must not be negative").
				WithDetail("line", i+1)
		}
		if mismatch := e.Taken - (e.Sold + e.Returned + e.Replaced); mismatch != 0 {
			return apperror.NewQuantityImbalance(e.CategoryID.String(), e.Taken, mismatch).
				WithDetail("line", i+1)
		}
	}

	return nil
}
