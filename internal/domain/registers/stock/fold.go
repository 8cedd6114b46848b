// Package stock provides the reconciliation register.
// Stock is never stored as a mutable counter: on-hand figures are recomputed
// from ledger history, so deleting a ledger document automatically corrects
// them. onHand = produced - taken + returned; replaced pieces stay out.
package stock

import (
	"sort"

	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
)

// Movement is one ledger event affecting a category's stock.
type Movement struct {
	CategoryID id.ID

	// Produced is pieces added by a production entry
	Produced int64

	// Taken and Returned come from sale entries; net stock impact is
	// Returned - Taken
	Taken    int64
	Returned int64
}

// CategoryInfo is the catalog data a snapshot line carries.
type CategoryInfo struct {
	ID          id.ID
	Name        string
	WeightGrams int64
	RateMinor   types.MinorUnits
	Active      bool
}

// Snapshot is the reconciled stock position of one category.
type Snapshot struct {
	CategoryID   id.ID            `db:"category_id" json:"categoryId"`
	CategoryName string           `db:"category_name" json:"categoryName"`
	WeightGrams  int64            `db:"weight_grams" json:"weightGrams"`
	RateMinor    types.MinorUnits `db:"rate_minor" json:"rateMinor"`
	Active       bool             `db:"is_active" json:"isActive"`

	Produced int64 `db:"produced" json:"produced"`
	Taken    int64 `db:"taken" json:"taken"`
	Returned int64 `db:"returned" json:"returned"`

	// OnHand is produced - taken + returned; may be negative after a
	// retroactive production delete
	OnHand int64 `db:"on_hand" json:"onHand"`

	// ValueMinor is onHand valued at the category's CURRENT rate
	ValueMinor types.MinorUnits `db:"value_minor" json:"valueMinor"`
}

// FoldSnapshot recomputes the stock position of every category from its
// movement history. Categories with no movements still appear with zero
// figures. Output is ordered heaviest package first, then by name.
func FoldSnapshot(categories []CategoryInfo, movements []Movement) []Snapshot {
	byID := make(map[id.ID]*Snapshot, len(categories))
	out := make([]Snapshot, 0, len(categories))

	for _, c := range categories {
		out = append(out, Snapshot{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			WeightGrams:  c.WeightGrams,
			RateMinor:    c.RateMinor,
			Active:       c.Active,
		})
	}
	for i := range out {
		byID[out[i].CategoryID] = &out[i]
	}

	for _, m := range movements {
		s, ok := byID[m.CategoryID]
		if !ok {
			continue
		}
		s.Produced += m.Produced
		s.Taken += m.Taken
		s.Returned += m.Returned
	}

	for i := range out {
		s := &out[i]
		s.OnHand = s.Produced - s.Taken + s.Returned
		s.ValueMinor = types.MinorUnits(s.OnHand) * s.RateMinor
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].WeightGrams != out[j].WeightGrams {
			return out[i].WeightGrams > out[j].WeightGrams
		}
		return out[i].CategoryName < out[j].CategoryName
	})

	return out
}

// TotalValue sums the valuation across snapshot lines.
func TotalValue(snapshots []Snapshot) types.MinorUnits {
	var total types.MinorUnits
	for _, s := range snapshots {
		total += s.ValueMinor
	}
	return total
}

// TotalOnHand sums on-hand pieces across snapshot lines.
func TotalOnHand(snapshots []Snapshot) int64 {
	var total int64
	for _, s := range snapshots {
		total += s.OnHand
	}
	return total
}
