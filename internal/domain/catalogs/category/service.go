package category

import (
	"context"
	"fmt"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
	"kahawa/internal/core/tx"
	"kahawa/pkg/logger"
)

// Service provides business operations for the PieceCategory catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new piece category service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create creates a new piece category.
func (s *Service) Create(ctx context.Context, cat *PieceCategory) error {
	if err := cat.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, cat); err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "piece category created", "id", cat.ID, "name", cat.Name)
	return nil
}

// GetByID retrieves a piece category by ID.
func (s *Service) GetByID(ctx context.Context, catID id.ID) (*PieceCategory, error) {
	cat, err := s.repo.GetByID(ctx, catID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("piece category", catID.String())
		}
		return nil, err
	}
	return cat, nil
}

// Update applies a partial update to a category.
// Rate changes affect only future entries; historical entries keep the rate
// recorded at transaction time.
func (s *Service) Update(ctx context.Context, catID id.ID, patch Patch) (*PieceCategory, error) {
	cat, err := s.GetByID(ctx, catID)
	if err != nil {
		return nil, err
	}

	patch.Apply(cat)

	if err := cat.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, cat); err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "piece category updated", "id", cat.ID)
	return cat, nil
}

// Deactivate soft-deletes a category. The row is never removed so that
// historical ledger entries keep a valid reference; deactivated categories
// still appear in historical reports.
func (s *Service) Deactivate(ctx context.Context, catID id.ID) error {
	if _, err := s.GetByID(ctx, catID); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetActive(ctx, catID, false)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "piece category deactivated", "id", catID)
	return nil
}

// List retrieves categories, heaviest package first.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*PieceCategory, error) {
	return s.repo.List(ctx, activeOnly)
}
