// Package expensetype provides the ExpenseType catalog.
package expensetype

import (
	"context"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/entity"
)

// ExpenseType classifies expense entries (e.g. "Transport", "Packaging").
type ExpenseType struct {
	entity.Catalog

	// Predefined types are seeded at install time and cannot be renamed.
	Predefined bool `db:"is_predefined" json:"isPredefined"`
}

// New creates a new user-defined expense type.
func New(name string) *ExpenseType {
	return &ExpenseType{
		Catalog: entity.NewCatalog(name),
	}
}

// NewPredefined creates a seeded expense type.
func NewPredefined(name string) *ExpenseType {
	t := New(name)
	t.Predefined = true
	return t
}

// Validate implements entity.Validatable.
func (t *ExpenseType) Validate(ctx context.Context) error {
	return t.Catalog.Validate(ctx)
}

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Name   *string
	Active *bool
}

// Apply copies the non-nil patch fields onto the expense type.
// Renaming a predefined type is rejected.
func (p Patch) Apply(t *ExpenseType) error {
	if p.Name != nil {
		if t.Predefined && *p.Name != t.Name {
			return apperror.NewBusinessRule(
				apperror.CodeBusinessRule,
				"predefined expense types cannot be renamed",
			).WithDetail("id", t.ID.String())
		}
		t.Name = *p.Name
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
	return nil
}
