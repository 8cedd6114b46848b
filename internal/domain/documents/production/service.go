package production

import (
	"context"
	"fmt"
	"time"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
	"kahawa/internal/core/tx"
	"kahawa/internal/core/types"
	"kahawa/internal/domain"
	"kahawa/pkg/logger"
)

// CategoryResolver looks up piece categories for entry validation and
// rate capture.
type CategoryResolver interface {
	Resolve(ctx context.Context, categoryID id.ID) (rateMinor types.MinorUnits, active bool, err error)
}

// Auditor records ledger mutations for the audit trail.
type Auditor interface {
	Record(ctx context.Context, action, entityType string, entityID id.ID, payload any) error
}

// Numberer issues sequential document numbers.
type Numberer interface {
	Next(ctx context.Context, prefix string, period time.Time) (string, error)
}

// NumberPrefix for production batch documents.
const NumberPrefix = "PRD"

// EntryInput is a requested production line.
type EntryInput struct {
	CategoryID id.ID
	Quantity   int64
}

// Input is a requested production batch.
type Input struct {
	Date    time.Time
	Notes   string
	Entries []EntryInput
}

// Service provides business operations for the production ledger.
type Service struct {
	repo       Repository
	categories CategoryResolver
	auditor    Auditor
	numberer   Numberer
	txManager  tx.Manager
}

// NewService creates a new production service.
func NewService(repo Repository, categories CategoryResolver, auditor Auditor, numberer Numberer, txManager tx.Manager) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		auditor:    auditor,
		numberer:   numberer,
		txManager:  txManager,
	}
}

// Record creates a production batch. Each entry captures the category's
// current rate; the batch is inserted atomically with its entries.
func (s *Service) Record(ctx context.Context, in Input) (*ProductionBatch, error) {
	batch := New(in.Date)
	batch.Notes = in.Notes

	var created *ProductionBatch
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, e := range in.Entries {
			rate, active, err := s.categories.Resolve(ctx, e.CategoryID)
			if err != nil {
				if apperror.IsNotFound(err) {
					return apperror.NewNotFound("piece category", e.CategoryID.String()).
						WithDetail("line", i+1)
				}
				return fmt.Errorf("resolve category: %w", err)
			}
			if !active {
				return apperror.NewBusinessRule(
					apperror.CodeBusinessRule,
					"cannot record production for deactivated category",
				).WithDetail("category_id", e.CategoryID.String())
			}
			batch.AddEntry(e.CategoryID, e.Quantity, rate)
		}

		if err := batch.Validate(ctx); err != nil {
			return err
		}

		number, err := s.numberer.Next(ctx, NumberPrefix, batch.Date)
		if err != nil {
			return err
		}
		batch.Number = number

		if err := s.repo.Create(ctx, batch); err != nil {
			return fmt.Errorf("create production batch: %w", err)
		}

		if err := s.auditor.Record(ctx, "create", "production_batch", batch.ID, batch); err != nil {
			return fmt.Errorf("audit production batch: %w", err)
		}

		created = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "production batch recorded",
		"id", created.ID,
		"entries", len(created.Entries),
		"quantity", created.TotalQuantity())
	return created, nil
}

// GetByID retrieves a batch with its entries.
func (s *Service) GetByID(ctx context.Context, batchID id.ID) (*ProductionBatch, error) {
	batch, err := s.repo.GetByID(ctx, batchID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("production batch", batchID.String())
		}
		return nil, err
	}
	return batch, nil
}

// Delete removes a batch and its entries. Stock is recomputed from the
// remaining history, so deletion retroactively lowers on-hand quantities;
// the resulting figures may go negative and are reported as-is.
func (s *Service) Delete(ctx context.Context, batchID id.ID) error {
	batch, err := s.GetByID(ctx, batchID)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, batchID); err != nil {
			return fmt.Errorf("delete production batch: %w", err)
		}
		if err := s.auditor.Record(ctx, "delete", "production_batch", batchID, batch); err != nil {
			return fmt.Errorf("audit production delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Warn(ctx, "production batch deleted, stock recomputed from remaining history",
		"id", batchID,
		"quantity", batch.TotalQuantity())
	return nil
}

// List retrieves batch headers matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ProductionBatch], error) {
	return s.repo.List(ctx, filter)
}
