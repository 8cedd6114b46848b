package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kahawa/internal/core/id"
	"kahawa/internal/domain"
	"kahawa/internal/domain/documents/sale"
	"kahawa/internal/infrastructure/storage/postgres"
)

var saleEntryCols = []string{
	"id", "sale_id", "category_id", "taken", "sold", "returned", "replaced",
	"rate_minor", "amount_minor", "line_number",
}

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.SaleTransaction]
}

// NewSaleRepo creates a new sale transaction repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			"sales",
			postgres.ExtractDBColumns[sale.SaleTransaction](),
			func() *sale.SaleTransaction { return &sale.SaleTransaction{} },
		),
	}
}

// Create inserts the transaction header and its entries.
func (r *SaleRepo) Create(ctx context.Context, s *sale.SaleTransaction) error {
	if err := r.InsertHeader(ctx, s); err != nil {
		return err
	}

	rows := make([][]any, 0, len(s.Entries))
	for _, e := range s.Entries {
		rows = append(rows, []any{
			e.EntryID, s.ID, e.CategoryID, e.Taken, e.Sold, e.Returned, e.Replaced,
			e.RateMinor, e.AmountMinor, e.LineNumber,
		})
	}

	return r.InsertLines(ctx, "sale_entries", saleEntryCols, rows)
}

// GetByID retrieves a transaction with its entries.
func (r *SaleRepo) GetByID(ctx context.Context, saleID id.ID) (*sale.SaleTransaction, error) {
	s, err := r.GetHeader(ctx, saleID)
	if err != nil {
		return nil, err
	}

	entries, err := r.loadEntries(ctx, saleID)
	if err != nil {
		return nil, err
	}
	s.Entries = entries

	return s, nil
}

func (r *SaleRepo) loadEntries(ctx context.Context, saleID id.ID) ([]sale.SaleEntry, error) {
	q := r.Builder().
		Select(saleEntryCols...).
		From("sale_entries").
		Where(squirrel.Eq{"sale_id": saleID}).
		OrderBy("line_number ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	var entries []sale.SaleEntry
	if err := pgxscan.Select(ctx, r.Querier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("load sale entries: %w", err)
	}

	return entries, nil
}

// List retrieves transaction headers matching the filter.
func (r *SaleRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*sale.SaleTransaction], error) {
	return r.BaseDocumentRepo.List(ctx, filter, "number", "route_name", "buyer_name")
}

// TotalsInPeriod aggregates sale figures between from and to inclusive.
// Revenue and debtor amounts come from headers; piece counts from entries.
func (r *SaleRepo) TotalsInPeriod(ctx context.Context, from, to time.Time) (sale.PeriodTotals, error) {
	var totals sale.PeriodTotals

	headerQ := r.Builder().
		Select(
			"COALESCE(SUM(total_amount_minor), 0) AS revenue_minor",
			"COALESCE(SUM(debtor_amount_minor), 0) AS debtors_minor",
		).
		From("sales").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to})

	sql, args, err := headerQ.ToSql()
	if err != nil {
		return totals, fmt.Errorf("build header totals: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&totals.RevenueMinor, &totals.DebtorsMinor); err != nil {
		return totals, fmt.Errorf("header totals: %w", err)
	}

	entryQ := r.Builder().
		Select(
			"COALESCE(SUM(e.sold), 0)",
			"COALESCE(SUM(e.taken), 0)",
			"COALESCE(SUM(e.returned), 0)",
			"COALESCE(SUM(e.replaced), 0)",
		).
		From("sale_entries e").
		Join("sales s ON s.id = e.sale_id").
		Where(squirrel.GtOrEq{"s.date": from}).
		Where(squirrel.LtOrEq{"s.date": to})

	sql, args, err = entryQ.ToSql()
	if err != nil {
		return totals, fmt.Errorf("build entry totals: %w", err)
	}

	if err := querier.QueryRow(ctx, sql, args...).Scan(
		&totals.SoldQty, &totals.TakenQty, &totals.ReturnedQty, &totals.ReplacedQty,
	); err != nil {
		return totals, fmt.Errorf("entry totals: %w", err)
	}

	return totals, nil
}
