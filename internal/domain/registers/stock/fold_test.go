package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/id"
)

func TestFoldSnapshot(t *testing.T) {
	catA := id.New()
	catB := id.New()

	categories := []CategoryInfo{
		{ID: catA, Name: "500g pack", WeightGrams: 500, RateMinor: 26000, Active: true},
		{ID: catB, Name: "1kg pack", WeightGrams: 1000, RateMinor: 50000, Active: true},
	}

	t.Run("on hand is produced minus taken plus returned", func(t *testing.T) {
		out := FoldSnapshot(categories, []Movement{
			{CategoryID: catA, Produced: 100},
			{CategoryID: catA, Taken: 30, Returned: 5},
			{CategoryID: catA, Taken: 10},
		})

		require.Len(t, out, 2)
		// heaviest first: catB (1kg) leads
		assert.Equal(t, catB, out[0].CategoryID)

		a := out[1]
		assert.Equal(t, int64(100), a.Produced)
		assert.Equal(t, int64(40), a.Taken)
		assert.Equal(t, int64(5), a.Returned)
		assert.Equal(t, int64(65), a.OnHand)
		assert.EqualValues(t, 65*26000, a.ValueMinor)
	})

	t.Run("categories without movements appear with zeros", func(t *testing.T) {
		out := FoldSnapshot(categories, nil)

		require.Len(t, out, 2)
		for _, s := range out {
			assert.Zero(t, s.OnHand)
			assert.Zero(t, s.ValueMinor)
		}
	})

	t.Run("negative on hand is reported as-is", func(t *testing.T) {
		// a retroactive production delete can leave taken > produced
		out := FoldSnapshot(categories, []Movement{
			{CategoryID: catB, Produced: 10},
			{CategoryID: catB, Taken: 25, Returned: 3},
		})

		b := out[0]
		assert.Equal(t, int64(-12), b.OnHand)
		assert.EqualValues(t, -12*50000, b.ValueMinor)
	})

	t.Run("movements for unknown categories are ignored", func(t *testing.T) {
		out := FoldSnapshot(categories, []Movement{
			{CategoryID: id.New(), Produced: 999},
		})

		assert.Zero(t, TotalOnHand(out))
	})

	t.Run("equal weight sorts by name", func(t *testing.T) {
		same := []CategoryInfo{
			{ID: id.New(), Name: "zebra", WeightGrams: 250},
			{ID: id.New(), Name: "alpha", WeightGrams: 250},
		}
		out := FoldSnapshot(same, nil)
		assert.Equal(t, "alpha", out[0].CategoryName)
	})
}

func TestFoldSnapshot_Idempotent(t *testing.T) {
	catA := id.New()
	catB := id.New()

	categories := []CategoryInfo{
		{ID: catA, Name: "500g pack", WeightGrams: 500, RateMinor: 26000, Active: true},
		{ID: catB, Name: "1kg pack", WeightGrams: 1000, RateMinor: 50000, Active: true},
	}
	movements := []Movement{
		{CategoryID: catA, Produced: 100},
		{CategoryID: catB, Produced: 40},
		{CategoryID: catA, Taken: 30, Returned: 5},
		{CategoryID: catB, Taken: 12, Returned: 2},
	}

	first := FoldSnapshot(categories, movements)
	second := FoldSnapshot(categories, movements)

	assert.Equal(t, first, second)
	assert.Equal(t, TotalOnHand(first), TotalOnHand(second))
	assert.Equal(t, TotalValue(first), TotalValue(second))
}

func TestFoldSnapshot_DeletionRestoresOnHand(t *testing.T) {
	cat := id.New()
	categories := []CategoryInfo{
		{ID: cat, Name: "250g pack", WeightGrams: 250, RateMinor: 13500, Active: true},
	}
	history := []Movement{
		{CategoryID: cat, Produced: 50},
		{CategoryID: cat, Taken: 10, Returned: 1},
	}
	saleMovements := []Movement{
		{CategoryID: cat, Taken: 8, Returned: 2},
	}

	before := FoldSnapshot(categories, history)
	require.Equal(t, int64(41), before[0].OnHand)

	withSale := FoldSnapshot(categories, append(append([]Movement{}, history...), saleMovements...))
	assert.Equal(t, int64(35), withSale[0].OnHand)

	// deleting the sale removes its movements from history; the next fold
	// lands back on the pre-sale position
	afterDelete := FoldSnapshot(categories, history)
	assert.Equal(t, before, afterDelete)
	assert.Equal(t, before[0].OnHand, afterDelete[0].OnHand)
}

func TestSnapshotTotals(t *testing.T) {
	snapshots := []Snapshot{
		{OnHand: 10, ValueMinor: 1000},
		{OnHand: -3, ValueMinor: -300},
		{OnHand: 5, ValueMinor: 500},
	}

	assert.Equal(t, int64(12), TotalOnHand(snapshots))
	assert.EqualValues(t, 1200, TotalValue(snapshots))
}
