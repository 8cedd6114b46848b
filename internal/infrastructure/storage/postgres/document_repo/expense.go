package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/internal/domain"
	"kahawa/internal/domain/documents/expense"
	"kahawa/internal/infrastructure/storage/postgres"
)

// ExpenseRepo implements expense.Repository.
type ExpenseRepo struct {
	*BaseDocumentRepo[*expense.ExpenseEntry]
}

// NewExpenseRepo creates a new expense repository.
func NewExpenseRepo(txManager *postgres.TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			"expenses",
			postgres.ExtractDBColumns[expense.ExpenseEntry](),
			func() *expense.ExpenseEntry { return &expense.ExpenseEntry{} },
		),
	}
}

// Create inserts an expense entry. Expenses have no line table.
func (r *ExpenseRepo) Create(ctx context.Context, e *expense.ExpenseEntry) error {
	return r.InsertHeader(ctx, e)
}

// Update rewrites an expense entry with optimistic version locking.
func (r *ExpenseRepo) Update(ctx context.Context, e *expense.ExpenseEntry) error {
	if err := r.UpdateHeader(ctx, e); err != nil {
		return err
	}
	e.Touch()
	return nil
}

// GetByID retrieves an expense entry.
func (r *ExpenseRepo) GetByID(ctx context.Context, expenseID id.ID) (*expense.ExpenseEntry, error) {
	return r.GetHeader(ctx, expenseID)
}

// List retrieves entries matching the filter.
func (r *ExpenseRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*expense.ExpenseEntry], error) {
	return r.BaseDocumentRepo.List(ctx, filter, "number", "description")
}

// TotalInPeriod returns total expense amount between from and to inclusive.
func (r *ExpenseRepo) TotalInPeriod(ctx context.Context, from, to time.Time) (types.MinorUnits, error) {
	q := r.Builder().
		Select("COALESCE(SUM(amount_minor), 0)").
		From("expenses").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var total types.MinorUnits
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("expense total: %w", err)
	}

	return total, nil
}

// BreakdownByType aggregates expenses per type over a period, largest first.
func (r *ExpenseRepo) BreakdownByType(ctx context.Context, from, to time.Time) ([]expense.TypeBreakdown, error) {
	q := r.Builder().
		Select(
			"e.type_id",
			"t.name AS type_name",
			"COALESCE(SUM(e.amount_minor), 0) AS amount_minor",
		).
		From("expenses e").
		Join("expense_types t ON t.id = e.type_id").
		Where(squirrel.GtOrEq{"e.date": from}).
		Where(squirrel.LtOrEq{"e.date": to}).
		GroupBy("e.type_id", "t.name").
		OrderBy("amount_minor DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []expense.TypeBreakdown
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("expense breakdown: %w", err)
	}

	return items, nil
}
