package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/internal/domain/catalogs/category"
	"kahawa/internal/infrastructure/storage/postgres"
)

// PieceCategoryRepo implements category.Repository.
type PieceCategoryRepo struct {
	*BaseCatalogRepo[*category.PieceCategory]
}

// NewPieceCategoryRepo creates a new piece category repository.
func NewPieceCategoryRepo(txManager *postgres.TxManager) *PieceCategoryRepo {
	return &PieceCategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"piece_categories",
			postgres.ExtractDBColumns[category.PieceCategory](),
			"weight_grams DESC, name ASC",
			func() *category.PieceCategory { return &category.PieceCategory{} },
		),
	}
}

// Resolve returns the category's current rate and active flag.
// Used by the ledger services to capture rates at transaction time.
func (r *PieceCategoryRepo) Resolve(ctx context.Context, categoryID id.ID) (types.MinorUnits, bool, error) {
	q := r.Builder().
		Select("rate_minor", "is_active").
		From("piece_categories").
		Where(squirrel.Eq{"id": categoryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build query: %w", err)
	}

	var rate types.MinorUnits
	var active bool
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&rate, &active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, apperror.NewNotFound("piece_categories", categoryID.String())
		}
		return 0, false, fmt.Errorf("resolve category: %w", err)
	}

	return rate, active, nil
}
