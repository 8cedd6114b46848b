package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/id"
)

func TestProductionBatch_AddEntry(t *testing.T) {
	b := New(time.Now())
	cat := id.New()

	b.AddEntry(cat, 40, 26000)

	require.Len(t, b.Entries, 1)
	e := b.Entries[0]
	assert.Equal(t, cat, e.CategoryID)
	assert.Equal(t, b.ID, e.BatchID)
	assert.EqualValues(t, 40*26000, e.AmountMinor)
	assert.Equal(t, 1, e.LineNumber)
}

func TestProductionBatch_Totals(t *testing.T) {
	b := New(time.Now())
	b.AddEntry(id.New(), 10, 500)
	b.AddEntry(id.New(), 5, 1000)

	assert.Equal(t, int64(15), b.TotalQuantity())
	assert.EqualValues(t, 10000, b.TotalAmount())
}

func TestProductionBatch_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid batch passes", func(t *testing.T) {
		b := New(time.Now())
		b.AddEntry(id.New(), 10, 500)
		require.NoError(t, b.Validate(ctx))
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		b := New(time.Now())
		require.Error(t, b.Validate(ctx))
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		b := New(time.Now())
		b.AddEntry(id.New(), 0, 500)
		require.Error(t, b.Validate(ctx))
	})

	t.Run("duplicate category rejected", func(t *testing.T) {
		cat := id.New()
		b := New(time.Now())
		b.AddEntry(cat, 10, 500)
		b.AddEntry(cat, 5, 500)
		require.Error(t, b.Validate(ctx))
	})

	t.Run("nil category rejected", func(t *testing.T) {
		b := New(time.Now())
		b.AddEntry(id.Nil(), 10, 500)
		require.Error(t, b.Validate(ctx))
	})
}

func TestNew_DefaultsDateToNow(t *testing.T) {
	b := New(time.Time{})
	assert.False(t, b.Date.IsZero())
}
