package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kahawa/internal/domain/catalogs/category"
	"kahawa/internal/domain/documents/sale"
)

func TestExtractDBColumns(t *testing.T) {
	t.Run("catalog entity includes embedded base columns", func(t *testing.T) {
		cols := ExtractDBColumns[category.PieceCategory]()
		assert.ElementsMatch(t, []string{
			"id", "version", "created_at", "name", "is_active",
			"weight_grams", "rate_minor",
		}, cols)
	})

	t.Run("document entity skips db:\"-\" entry slice", func(t *testing.T) {
		cols := ExtractDBColumns[sale.SaleTransaction]()
		assert.NotContains(t, cols, "-")
		assert.Contains(t, cols, "number")
		assert.Contains(t, cols, "payment_type")
		assert.Contains(t, cols, "total_amount_minor")
	})
}

func TestStructToMap(t *testing.T) {
	cat := category.New("500g pack", 500, 26000)
	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, "500g pack", m["name"])
	assert.Equal(t, int64(500), m["weight_grams"])
	assert.Equal(t, cat.RateMinor, m["rate_minor"])
	assert.Equal(t, true, m["is_active"])

	// second call hits the type cache and must agree
	assert.Equal(t, m, StructToMap(cat))
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}
