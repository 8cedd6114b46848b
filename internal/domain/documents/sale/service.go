package sale

import (
	"context"
	"fmt"
	"sort"
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

// StockGuard provides on-hand quantities with row locks held for the rest
// of the current transaction, so concurrent sales against the same
// categories serialize instead of both passing the availability check.
type StockGuard interface {
	OnHandForUpdate(ctx context.Context, categoryIDs []id.ID) (map[id.ID]int64, error)
}

// Auditor records ledger mutations for the audit trail.
type Auditor interface {
	Record(ctx context.Context, action, entityType string, entityID id.ID, payload any) error
}

// Numberer issues sequential document numbers.
type Numberer interface {
	Next(ctx context.Context, prefix string, period time.Time) (string, error)
}

// NumberPrefix for sale documents.
const NumberPrefix = "SAL"

// EntryInput is a requested sale line. Returned is optional: when nil it is
// derived as max(0, taken - sold - replaced).
type EntryInput struct {
	CategoryID id.ID
	Taken      int64
	Sold       int64
	Returned   *int64
	Replaced   int64
}

// Input is a requested sale transaction.
type Input struct {
	Date              time.Time
	RouteName         string
	BuyerName         string
	PaymentType       PaymentType
	DebtorAmountMinor types.MinorUnits
	Notes             string
	Entries           []EntryInput
}

// Service provides business operations for the sale ledger.
type Service struct {
	repo       Repository
	categories CategoryResolver
	stock      StockGuard
	auditor    Auditor
	numberer   Numberer
	txManager  tx.Manager
}

// NewService creates a new sale service.
func NewService(repo Repository, categories CategoryResolver, stock StockGuard, auditor Auditor, numberer Numberer, txManager tx.Manager) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		stock:      stock,
		auditor:    auditor,
		numberer:   numberer,
		txManager:  txManager,
	}
}

// Record creates a sale transaction.
//
// The availability check and the insert run in one transaction with the
// affected category rows locked, so no interleaving of two sales can take
// more pieces than are on hand. Locks are acquired in sorted category order
// to avoid deadlocks between overlapping sales.
func (s *Service) Record(ctx context.Context, in Input) (*SaleTransaction, error) {
	sale := New(in.Date)
	sale.RouteName = in.RouteName
	sale.BuyerName = in.BuyerName
	sale.PaymentType = in.PaymentType
	sale.DebtorAmountMinor = in.DebtorAmountMinor
	sale.Notes = in.Notes

	var created *SaleTransaction
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
					"cannot sell from deactivated category",
				).WithDetail("category_id", e.CategoryID.String())
			}

			returned := DeriveReturned(e.Taken, e.Sold, e.Replaced)
			if e.Returned != nil {
				returned = *e.Returned
			}
			sale.AddEntry(e.CategoryID, e.Taken, e.Sold, returned, e.Replaced, rate)
		}

		sale.Normalize()
		if err := sale.Validate(ctx); err != nil {
			return err
		}

		if err := s.checkAvailability(ctx, sale); err != nil {
			return err
		}

		number, err := s.numberer.Next(ctx, NumberPrefix, sale.Date)
		if err != nil {
			return err
		}
		sale.Number = number

		if err := s.repo.Create(ctx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}

		if err := s.auditor.Record(ctx, "create", "sale", sale.ID, sale); err != nil {
			return fmt.Errorf("audit sale: %w", err)
		}

		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale recorded",
		"id", created.ID,
		"payment", created.PaymentType,
		"total", int64(created.TotalAmountMinor),
		"entries", len(created.Entries))
	return created, nil
}

// checkAvailability locks the affected category rows and verifies that taken
// quantities do not exceed on-hand stock. Must run inside a transaction.
func (s *Service) checkAvailability(ctx context.Context, sale *SaleTransaction) error {
	taken := sale.TakenByCategory()

	ids := make([]id.ID, 0, len(taken))
	for catID := range taken {
		ids = append(ids, catID)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	onHand, err := s.stock.OnHandForUpdate(ctx, ids)
	if err != nil {
		return fmt.Errorf("lock stock rows: %w", err)
	}

	for _, catID := range ids {
		available := onHand[catID]
		if taken[catID] > available {
			return apperror.NewInsufficientStock(catID.String(), taken[catID], available)
		}
	}
	return nil
}

// GetByID retrieves a transaction with its entries.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*SaleTransaction, error) {
	sale, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, err
	}
	return sale, nil
}

// Delete removes a transaction and its entries atomically. Pieces the sale
// had taken out return to stock on the next recomputation; revenue and
// debtor figures drop out of reports for the affected period.
func (s *Service) Delete(ctx context.Context, saleID id.ID) error {
	sale, err := s.GetByID(ctx, saleID)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, saleID); err != nil {
			return fmt.Errorf("delete sale: %w", err)
		}
		if err := s.auditor.Record(ctx, "delete", "sale", saleID, sale); err != nil {
			return fmt.Errorf("audit sale delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale deleted", "id", saleID, "total", int64(sale.TotalAmountMinor))
	return nil
}

// List retrieves transaction headers matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*SaleTransaction], error) {
	return s.repo.List(ctx, filter)
}
