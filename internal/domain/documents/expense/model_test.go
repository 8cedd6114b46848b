package expense

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kahawa/internal/core/id"
)

func TestExpenseEntry_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid entry passes", func(t *testing.T) {
		e := New(time.Now(), id.New(), 5000)
		require.NoError(t, e.Validate(ctx))
	})

	t.Run("missing type rejected", func(t *testing.T) {
		e := New(time.Now(), id.Nil(), 5000)
		require.Error(t, e.Validate(ctx))
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		e := New(time.Now(), id.New(), 0)
		require.Error(t, e.Validate(ctx))
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		e := New(time.Now(), id.New(), -100)
		require.Error(t, e.Validate(ctx))
	})
}
