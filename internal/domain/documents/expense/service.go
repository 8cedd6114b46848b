package expense

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

// TypeChecker verifies that an expense type exists.
type TypeChecker interface {
	Exists(ctx context.Context, typeID id.ID) (bool, error)
}

// SaleChecker verifies that a linked sale exists.
type SaleChecker interface {
	Exists(ctx context.Context, saleID id.ID) (bool, error)
}

// Auditor records ledger mutations for the audit trail.
type Auditor interface {
	Record(ctx context.Context, action, entityType string, entityID id.ID, payload any) error
}

// Numberer issues sequential document numbers.
type Numberer interface {
	Next(ctx context.Context, prefix string, period time.Time) (string, error)
}

// NumberPrefix for expense documents.
const NumberPrefix = "EXP"

// Input is a requested expense entry.
type Input struct {
	Date         time.Time
	TypeID       id.ID
	AmountMinor  types.MinorUnits
	Description  string
	Notes        string
	LinkedSaleID *id.ID
}

// Service provides business operations for the expense ledger.
type Service struct {
	repo      Repository
	types     TypeChecker
	sales     SaleChecker
	auditor   Auditor
	numberer  Numberer
	txManager tx.Manager
}

// NewService creates a new expense service.
func NewService(repo Repository, types TypeChecker, sales SaleChecker, auditor Auditor, numberer Numberer, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		types:     types,
		sales:     sales,
		auditor:   auditor,
		numberer:  numberer,
		txManager: txManager,
	}
}

// checkReferences verifies the expense type and, when set, the linked sale.
func (s *Service) checkReferences(ctx context.Context, e *ExpenseEntry) error {
	ok, err := s.types.Exists(ctx, e.TypeID)
	if err != nil {
		return fmt.Errorf("check expense type: %w", err)
	}
	if !ok {
		return apperror.NewNotFound("expense type", e.TypeID.String())
	}

	if e.LinkedSaleID != nil {
		ok, err := s.sales.Exists(ctx, *e.LinkedSaleID)
		if err != nil {
			return fmt.Errorf("check linked sale: %w", err)
		}
		if !ok {
			return apperror.NewNotFound("sale", e.LinkedSaleID.String())
		}
	}

	return nil
}

// Record creates an expense entry.
func (s *Service) Record(ctx context.Context, in Input) (*ExpenseEntry, error) {
	e := New(in.Date, in.TypeID, in.AmountMinor)
	e.Description = in.Description
	e.Notes = in.Notes
	e.LinkedSaleID = in.LinkedSaleID

	if err := e.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, e); err != nil {
			return err
		}

		number, err := s.numberer.Next(ctx, NumberPrefix, e.Date)
		if err != nil {
			return err
		}
		e.Number = number

		if err := s.repo.Create(ctx, e); err != nil {
			return fmt.Errorf("create expense: %w", err)
		}

		if err := s.auditor.Record(ctx, "create", "expense", e.ID, e); err != nil {
			return fmt.Errorf("audit expense: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "expense recorded", "id", e.ID, "amount", int64(e.AmountMinor))
	return e, nil
}

// Update applies a partial update to an expense entry.
func (s *Service) Update(ctx context.Context, expenseID id.ID, patch Patch) (*ExpenseEntry, error) {
	e, err := s.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	patch.Apply(e)

	if err := e.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, e); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, e); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}

		if err := s.auditor.Record(ctx, "update", "expense", e.ID, e); err != nil {
			return fmt.Errorf("audit expense update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "expense updated", "id", e.ID, "amount", int64(e.AmountMinor))
	return e, nil
}

// GetByID retrieves an expense entry.
func (s *Service) GetByID(ctx context.Context, expenseID id.ID) (*ExpenseEntry, error) {
	e, err := s.repo.GetByID(ctx, expenseID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("expense", expenseID.String())
		}
		return nil, err
	}
	return e, nil
}

// Delete removes an expense entry; profit figures for the affected period
// rise accordingly on the next report.
func (s *Service) Delete(ctx context.Context, expenseID id.ID) error {
	e, err := s.GetByID(ctx, expenseID)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, expenseID); err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}
		if err := s.auditor.Record(ctx, "delete", "expense", expenseID, e); err != nil {
			return fmt.Errorf("audit expense delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "expense deleted", "id", expenseID, "amount", int64(e.AmountMinor))
	return nil
}

// List retrieves entries matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ExpenseEntry], error) {
	return s.repo.List(ctx, filter)
}
