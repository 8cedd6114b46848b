package dto

import (
	"time"

	"kahawa/internal/core/types"
	"kahawa/internal/domain/catalogs/category"
)

// CategoryResponse is the API shape of a piece category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	WeightGrams int64     `json:"weightGrams"`
	RateMinor   int64     `json:"rateMinor"`
	IsActive    bool      `json:"isActive"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromCategory creates CategoryResponse from the domain entity.
func FromCategory(c *category.PieceCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		WeightGrams: c.WeightGrams,
		RateMinor:   int64(c.RateMinor),
		IsActive:    c.Active,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
	}
}

// FromCategories maps a slice of categories.
func FromCategories(cats []*category.PieceCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, FromCategory(c))
	}
	return out
}

// CreateCategoryRequest for creating piece categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	WeightGrams int64  `json:"weightGrams" binding:"required,gt=0"`
	RateMinor   int64  `json:"rateMinor" binding:"min=0"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateCategoryRequest) ToEntity() *category.PieceCategory {
	return category.New(r.Name, r.WeightGrams, types.MinorUnits(r.RateMinor))
}

// UpdateCategoryRequest for partial updates. Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	WeightGrams *int64  `json:"weightGrams"`
	RateMinor   *int64  `json:"rateMinor"`
	IsActive    *bool   `json:"isActive"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateCategoryRequest) ToPatch() category.Patch {
	p := category.Patch{
		Name:        r.Name,
		WeightGrams: r.WeightGrams,
		Active:      r.IsActive,
	}
	if r.RateMinor != nil {
		rate := types.MinorUnits(*r.RateMinor)
		p.RateMinor = &rate
	}
	return p
}
