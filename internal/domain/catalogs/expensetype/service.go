package expensetype

import (
	"context"
	"fmt"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
	"kahawa/internal/core/tx"
	"kahawa/pkg/logger"
)

// Service provides business operations for the ExpenseType catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new expense type service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create creates a new user-defined expense type.
func (s *Service) Create(ctx context.Context, t *ExpenseType) error {
	if err := t.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create expense type: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "expense type created", "id", t.ID, "name", t.Name)
	return nil
}

// GetByID retrieves an expense type by ID.
func (s *Service) GetByID(ctx context.Context, typeID id.ID) (*ExpenseType, error) {
	t, err := s.repo.GetByID(ctx, typeID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("expense type", typeID.String())
		}
		return nil, err
	}
	return t, nil
}

// Update applies a partial update to an expense type.
func (s *Service) Update(ctx context.Context, typeID id.ID, patch Patch) (*ExpenseType, error) {
	t, err := s.GetByID(ctx, typeID)
	if err != nil {
		return nil, err
	}

	if err := patch.Apply(t); err != nil {
		return nil, err
	}

	if err := t.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, t); err != nil {
			return fmt.Errorf("update expense type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Deactivate soft-deletes an expense type; historical expenses keep the reference.
func (s *Service) Deactivate(ctx context.Context, typeID id.ID) error {
	if _, err := s.GetByID(ctx, typeID); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetActive(ctx, typeID, false)
	})
}

// List retrieves expense types ordered by name.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*ExpenseType, error) {
	return s.repo.List(ctx, activeOnly)
}
