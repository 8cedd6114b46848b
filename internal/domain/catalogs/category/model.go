// Package category provides the PieceCategory catalog.
// A piece category is a stock-keeping unit defined by package weight and
// current unit sale rate (e.g. "100g" at 5000 minor units per piece).
package category

import (
	"context"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/entity"
	"kahawa/internal/core/types"
)

// PieceCategory represents a stock-keeping unit.
//
// Identity is immutable. The rate is the CURRENT unit rate: changing it
// affects only future ledger entries and stock valuation; historical entries
// keep the rate copied into them at transaction time.
type PieceCategory struct {
	entity.Catalog

	// WeightGrams is the package weight of one piece
	WeightGrams int64 `db:"weight_grams" json:"weightGrams"`

	// RateMinor is the current unit sale rate in minor units
	RateMinor types.MinorUnits `db:"rate_minor" json:"rateMinor"`
}

// New creates a new active PieceCategory.
func New(name string, weightGrams int64, rateMinor types.MinorUnits) *PieceCategory {
	return &PieceCategory{
		Catalog:     entity.NewCatalog(name),
		WeightGrams: weightGrams,
		RateMinor:   rateMinor,
	}
}

// Validate implements entity.Validatable.
func (c *PieceCategory) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.WeightGrams <= 0 {
		return apperror.NewValidation("unit weight must be positive").
			WithDetail("field", "weightGrams").
			WithDetail("value", c.WeightGrams)
	}

	if c.RateMinor < 0 {
		return apperror.NewValidation("unit rate must not be negative").
			WithDetail("field", "rateMinor").
			WithDetail("value", int64(c.RateMinor))
	}

	return nil
}

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	WeightGrams *int64
	RateMinor   *types.MinorUnits
	Active      *bool
}

// Apply copies the non-nil patch fields onto the category.
func (p Patch) Apply(c *PieceCategory) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.WeightGrams != nil {
		c.WeightGrams = *p.WeightGrams
	}
	if p.RateMinor != nil {
		c.RateMinor = *p.RateMinor
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
}
