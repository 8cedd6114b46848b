package category

import (
	"kahawa/internal/domain"
)

// Repository defines the interface for PieceCategory persistence.
type Repository interface {
	domain.CatalogRepository[*PieceCategory]
}
