package expensetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch_Apply(t *testing.T) {
	t.Run("renames user-defined type", func(t *testing.T) {
		et := New("Fuel")
		name := "Transport"

		require.NoError(t, Patch{Name: &name}.Apply(et))
		assert.Equal(t, "Transport", et.Name)
	})

	t.Run("rejects renaming predefined type", func(t *testing.T) {
		et := NewPredefined("Coffee beans")
		name := "Beans"

		require.Error(t, Patch{Name: &name}.Apply(et))
		assert.Equal(t, "Coffee beans", et.Name)
	})

	t.Run("same name on predefined type is a no-op", func(t *testing.T) {
		et := NewPredefined("Coffee beans")
		name := "Coffee beans"

		require.NoError(t, Patch{Name: &name}.Apply(et))
	})

	t.Run("predefined type can be deactivated", func(t *testing.T) {
		et := NewPredefined("Rent")
		active := false

		require.NoError(t, Patch{Active: &active}.Apply(et))
		assert.False(t, et.Active)
	})
}

func TestNewPredefined(t *testing.T) {
	et := NewPredefined("Transport")
	assert.True(t, et.Predefined)
	assert.True(t, et.Active)
}
