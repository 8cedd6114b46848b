package catalog_repo

import (
	"kahawa/internal/domain/catalogs/expensetype"
	"kahawa/internal/infrastructure/storage/postgres"
)

// ExpenseTypeRepo implements expensetype.Repository.
type ExpenseTypeRepo struct {
	*BaseCatalogRepo[*expensetype.ExpenseType]
}

// NewExpenseTypeRepo creates a new expense type repository.
func NewExpenseTypeRepo(txManager *postgres.TxManager) *ExpenseTypeRepo {
	return &ExpenseTypeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"expense_types",
			postgres.ExtractDBColumns[expensetype.ExpenseType](),
			"name ASC",
			func() *expensetype.ExpenseType { return &expensetype.ExpenseType{} },
		),
	}
}
