package expensetype

import (
	"kahawa/internal/domain"
)

// Repository defines the interface for ExpenseType persistence.
type Repository interface {
	domain.CatalogRepository[*ExpenseType]
}
