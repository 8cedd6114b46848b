// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
	"kahawa/internal/domain"
)

// --- List Request ---

// ListRequest contains common list query parameters.
type ListRequest struct {
	Search     string `form:"search"`
	OrderBy    string `form:"orderBy"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
	ActiveOnly bool   `form:"activeOnly"`
}

// ToFilter converts the request to a domain list filter.
// Dates are accepted as YYYY-MM-DD; dateTo covers its whole day.
func (r *ListRequest) ToFilter() (domain.ListFilter, error) {
	filter := domain.DefaultListFilter()
	filter.Search = r.Search
	filter.OrderBy = r.OrderBy
	if r.Limit > 0 {
		filter.Limit = r.Limit
	}
	filter.Offset = r.Offset

	if r.DateFrom != "" {
		from, err := time.Parse(time.DateOnly, r.DateFrom)
		if err != nil {
			return filter, apperror.NewValidation("invalid dateFrom, expected YYYY-MM-DD").
				WithDetail("value", r.DateFrom)
		}
		filter.DateFrom = &from
	}
	if r.DateTo != "" {
		to, err := time.Parse(time.DateOnly, r.DateTo)
		if err != nil {
			return filter, apperror.NewValidation("invalid dateTo, expected YYYY-MM-DD").
				WithDetail("value", r.DateTo)
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &endOfDay
	}

	return filter, nil
}

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Helpers ---

// ParseID parses a path/query parameter into an entity ID.
func ParseID(raw string) (id.ID, error) {
	parsed, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id").WithDetail("value", raw)
	}
	return parsed, nil
}

// ParseDate parses a YYYY-MM-DD value; empty input returns the zero time.
func ParseDate(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", raw)
	}
	return parsed, nil
}
