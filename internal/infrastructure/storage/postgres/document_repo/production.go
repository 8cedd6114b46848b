package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kahawa/internal/core/id"
	"kahawa/internal/domain"
	"kahawa/internal/domain/documents/production"
	"kahawa/internal/infrastructure/storage/postgres"
)

var productionEntryCols = []string{
	"id", "batch_id", "category_id", "quantity", "rate_minor", "amount_minor", "line_number",
}

// ProductionRepo implements production.Repository.
type ProductionRepo struct {
	*BaseDocumentRepo[*production.ProductionBatch]
}

// NewProductionRepo creates a new production batch repository.
func NewProductionRepo(txManager *postgres.TxManager) *ProductionRepo {
	return &ProductionRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			"production_batches",
			postgres.ExtractDBColumns[production.ProductionBatch](),
			func() *production.ProductionBatch { return &production.ProductionBatch{} },
		),
	}
}

// Create inserts the batch header and its entries.
func (r *ProductionRepo) Create(ctx context.Context, batch *production.ProductionBatch) error {
	if err := r.InsertHeader(ctx, batch); err != nil {
		return err
	}

	rows := make([][]any, 0, len(batch.Entries))
	for _, e := range batch.Entries {
		rows = append(rows, []any{
			e.EntryID, batch.ID, e.CategoryID, e.Quantity, e.RateMinor, e.AmountMinor, e.LineNumber,
		})
	}

	return r.InsertLines(ctx, "production_entries", productionEntryCols, rows)
}

// GetByID retrieves a batch with its entries.
func (r *ProductionRepo) GetByID(ctx context.Context, batchID id.ID) (*production.ProductionBatch, error) {
	batch, err := r.GetHeader(ctx, batchID)
	if err != nil {
		return nil, err
	}

	entries, err := r.loadEntries(ctx, batchID)
	if err != nil {
		return nil, err
	}
	batch.Entries = entries

	return batch, nil
}

func (r *ProductionRepo) loadEntries(ctx context.Context, batchID id.ID) ([]production.ProductionEntry, error) {
	q := r.Builder().
		Select(productionEntryCols...).
		From("production_entries").
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("line_number ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	var entries []production.ProductionEntry
	if err := pgxscan.Select(ctx, r.Querier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("load production entries: %w", err)
	}

	return entries, nil
}

// List retrieves batch headers matching the filter.
func (r *ProductionRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*production.ProductionBatch], error) {
	return r.BaseDocumentRepo.List(ctx, filter, "number", "notes")
}

// ProducedInPeriod returns total pieces produced between from and to inclusive.
func (r *ProductionRepo) ProducedInPeriod(ctx context.Context, from, to time.Time) (int64, error) {
	q := r.Builder().
		Select("COALESCE(SUM(e.quantity), 0)").
		From("production_entries e").
		Join("production_batches b ON b.id = e.batch_id").
		Where(squirrel.GtOrEq{"b.date": from}).
		Where(squirrel.LtOrEq{"b.date": to})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var total int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("produced in period: %w", err)
	}

	return total, nil
}
