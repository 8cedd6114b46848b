// Package main seeds reference data: predefined expense types and an
// initial set of piece categories. Safe to run repeatedly; rows already
// present by name are skipped.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"kahawa/internal/core/types"
	"kahawa/internal/domain/catalogs/category"
	"kahawa/internal/domain/catalogs/expensetype"
	"kahawa/internal/infrastructure/storage/postgres"
	"kahawa/internal/infrastructure/storage/postgres/catalog_repo"
	"kahawa/pkg/logger"
)

var predefinedExpenseTypes = []string{
	"Coffee beans",
	"Packaging",
	"Transport",
	"Labor",
	"Rent",
	"Utilities",
	"Miscellaneous",
}

// weight in grams, rate in minor currency units
var seedCategories = []struct {
	name   string
	weight int64
	rate   types.MinorUnits
}{
	{"1kg pack", 1000, 50000},
	{"500g pack", 500, 26000},
	{"250g pack", 250, 13500},
	{"100g pack", 100, 5800},
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	if err := seedExpenseTypes(ctx, txManager); err != nil {
		log.Fatalw("seed expense types", "error", err)
	}
	if err := seedPieceCategories(ctx, txManager); err != nil {
		log.Fatalw("seed piece categories", "error", err)
	}

	log.Info("seed complete")
}

func seedExpenseTypes(ctx context.Context, txManager *postgres.TxManager) error {
	repo := catalog_repo.NewExpenseTypeRepo(txManager)

	existing, err := repo.List(ctx, false)
	if err != nil {
		return err
	}
	byName := make(map[string]bool, len(existing))
	for _, t := range existing {
		byName[t.Name] = true
	}

	return txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, name := range predefinedExpenseTypes {
			if byName[name] {
				continue
			}
			if err := repo.Create(ctx, expensetype.NewPredefined(name)); err != nil {
				return fmt.Errorf("create expense type %q: %w", name, err)
			}
			logger.Info(ctx, "expense type seeded", "name", name)
		}
		return nil
	})
}

func seedPieceCategories(ctx context.Context, txManager *postgres.TxManager) error {
	repo := catalog_repo.NewPieceCategoryRepo(txManager)

	existing, err := repo.List(ctx, false)
	if err != nil {
		return err
	}
	byName := make(map[string]bool, len(existing))
	for _, c := range existing {
		byName[c.Name] = true
	}

	return txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, c := range seedCategories {
			if byName[c.name] {
				continue
			}
			if err := repo.Create(ctx, category.New(c.name, c.weight, c.rate)); err != nil {
				return fmt.Errorf("create category %q: %w", c.name, err)
			}
			logger.Info(ctx, "piece category seeded", "name", c.name)
		}
		return nil
	})
}
