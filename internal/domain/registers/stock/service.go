package stock

import (
	"context"
	"time"

	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/pkg/logger"
)

// Overview is a snapshot plus its totals.
type Overview struct {
	AsOf            *time.Time       `json:"asOf,omitempty"`
	Lines           []Snapshot       `json:"lines"`
	TotalOnHand     int64            `json:"totalOnHand"`
	TotalValueMinor types.MinorUnits `json:"totalValueMinor"`
}

// Service provides stock reconciliation queries.
type Service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot returns the reconciled position of every category with totals.
// Negative on-hand lines (possible after retroactive production deletes)
// are reported as-is and logged.
func (s *Service) Snapshot(ctx context.Context, asOf *time.Time) (*Overview, error) {
	lines, err := s.repo.Snapshot(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if l.OnHand < 0 {
			logger.Warn(ctx, "negative on-hand stock",
				"category_id", l.CategoryID,
				"category", l.CategoryName,
				"on_hand", l.OnHand)
		}
	}

	return &Overview{
		AsOf:            asOf,
		Lines:           lines,
		TotalOnHand:     TotalOnHand(lines),
		TotalValueMinor: TotalValue(lines),
	}, nil
}

// OnHand returns the current on-hand quantity of a single category.
func (s *Service) OnHand(ctx context.Context, categoryID id.ID) (int64, error) {
	lines, err := s.repo.Snapshot(ctx, nil)
	if err != nil {
		return 0, err
	}
	for _, l := range lines {
		if l.CategoryID == categoryID {
			return l.OnHand, nil
		}
	}
	return 0, nil
}
