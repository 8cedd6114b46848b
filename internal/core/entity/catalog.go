package entity

import (
	"context"

	"kahawa/internal/core/apperror"
)

// Catalog is the base type for reference data.
// Examples: PieceCategory, ExpenseType.
//
// Catalog rows are never physically deleted; they are deactivated so that
// historical ledger entries keep valid references.
type Catalog struct {
	BaseEntity

	// Name is the display name (unique per catalog)
	Name string `db:"name" json:"name"`

	// Active controls whether the row appears in new-entry selection lists.
	// Inactive rows remain valid references for historical entries.
	Active bool `db:"is_active" json:"isActive"`
}

// NewCatalog creates a new active Catalog with generated ID.
func NewCatalog(name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Name:       name,
		Active:     true,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Deactivate marks the row as inactive (soft delete).
func (c *Catalog) Deactivate() {
	c.Active = false
	c.Touch()
}
