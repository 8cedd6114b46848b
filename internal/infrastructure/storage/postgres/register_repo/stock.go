// Package register_repo provides PostgreSQL implementations for register
// repositories. Registers are derived views over the ledgers, recomputed
// per query rather than maintained as mutable counters.
package register_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"kahawa/internal/core/id"
	"kahawa/internal/domain/registers/stock"
	"kahawa/internal/infrastructure/storage/postgres"
)

// StockRepo implements stock.Repository by aggregating the production and
// sale ledgers on the fly.
type StockRepo struct {
	txManager *postgres.TxManager
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{txManager: txManager}
}

// snapshotSQL aggregates both ledgers per category. Deactivated categories
// are included: their history remains part of the position.
const snapshotSQL = `
	SELECT
		c.id            AS category_id,
		c.name          AS category_name,
		c.weight_grams  AS weight_grams,
		c.rate_minor    AS rate_minor,
		c.is_active     AS is_active,
		COALESCE(p.produced, 0) AS produced,
		COALESCE(s.taken, 0)    AS taken,
		COALESCE(s.returned, 0) AS returned,
		COALESCE(p.produced, 0) - COALESCE(s.taken, 0) + COALESCE(s.returned, 0) AS on_hand,
		(COALESCE(p.produced, 0) - COALESCE(s.taken, 0) + COALESCE(s.returned, 0)) * c.rate_minor AS value_minor
	FROM piece_categories c
	LEFT JOIN (
		SELECT e.category_id, SUM(e.quantity) AS produced
		FROM production_entries e
		JOIN production_batches b ON b.id = e.batch_id
		%s
		GROUP BY e.category_id
	) p ON p.category_id = c.id
	LEFT JOIN (
		SELECT e.category_id, SUM(e.taken) AS taken, SUM(e.returned) AS returned
		FROM sale_entries e
		JOIN sales s ON s.id = e.sale_id
		%s
		GROUP BY e.category_id
	) s ON s.category_id = c.id
	ORDER BY c.weight_grams DESC, c.name ASC
`

// Snapshot aggregates the full stock position. A non-nil asOf limits the
// aggregation to documents dated on or before it.
func (r *StockRepo) Snapshot(ctx context.Context, asOf *time.Time) ([]stock.Snapshot, error) {
	var args []any
	prodCond, saleCond := "", ""
	if asOf != nil {
		prodCond = "WHERE b.date <= $1"
		saleCond = "WHERE s.date <= $1"
		args = append(args, *asOf)
	}

	sql := fmt.Sprintf(snapshotSQL, prodCond, saleCond)

	// Read-only transaction: the two ledger aggregations see one consistent
	// point in time. Nested calls reuse a surrounding transaction.
	var lines []stock.Snapshot
	err := r.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &lines, sql, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}

	return lines, nil
}

// OnHandForUpdate locks the given category rows and returns their on-hand
// quantities. Callers pass IDs in sorted order so overlapping transactions
// acquire locks in the same sequence. Must run inside a transaction.
func (r *StockRepo) OnHandForUpdate(ctx context.Context, categoryIDs []id.ID) (map[id.ID]int64, error) {
	if len(categoryIDs) == 0 {
		return map[id.ID]int64{}, nil
	}

	if r.txManager.GetTx(ctx) == nil {
		return nil, fmt.Errorf("OnHandForUpdate requires transaction context")
	}

	querier := r.txManager.GetQuerier(ctx)

	// Lock the category rows first; aggregation happens under the lock.
	placeholders := make([]string, len(categoryIDs))
	args := make([]any, len(categoryIDs))
	for i, catID := range categoryIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = catID
	}
	inClause := strings.Join(placeholders, ", ")

	lockSQL := fmt.Sprintf(
		"SELECT id FROM piece_categories WHERE id IN (%s) ORDER BY id FOR UPDATE",
		inClause,
	)
	rows, err := querier.Query(ctx, lockSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("lock categories: %w", err)
	}
	locked := make(map[id.ID]bool, len(categoryIDs))
	for rows.Next() {
		var catID id.ID
		if err := rows.Scan(&catID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan locked id: %w", err)
		}
		locked[catID] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lock categories: %w", err)
	}

	onHandSQL := fmt.Sprintf(`
		SELECT
			c.id,
			COALESCE(p.produced, 0) - COALESCE(s.taken, 0) + COALESCE(s.returned, 0) AS on_hand
		FROM piece_categories c
		LEFT JOIN (
			SELECT category_id, SUM(quantity) AS produced
			FROM production_entries
			WHERE category_id IN (%s)
			GROUP BY category_id
		) p ON p.category_id = c.id
		LEFT JOIN (
			SELECT category_id, SUM(taken) AS taken, SUM(returned) AS returned
			FROM sale_entries
			WHERE category_id IN (%s)
			GROUP BY category_id
		) s ON s.category_id = c.id
		WHERE c.id IN (%s)
	`, inClause, inClause, inClause)

	rows, err = querier.Query(ctx, onHandSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate on-hand: %w", err)
	}
	defer rows.Close()

	out := make(map[id.ID]int64, len(categoryIDs))
	for rows.Next() {
		var catID id.ID
		var onHand int64
		if err := rows.Scan(&catID, &onHand); err != nil {
			return nil, fmt.Errorf("scan on-hand: %w", err)
		}
		out[catID] = onHand
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate on-hand: %w", err)
	}

	// Categories missing from the result were never created
	for _, catID := range categoryIDs {
		if !locked[catID] {
			return nil, fmt.Errorf("category %s not found while locking stock", catID)
		}
	}

	return out, nil
}
