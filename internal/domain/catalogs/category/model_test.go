package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/types"
)

func TestPieceCategory_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cat     *PieceCategory
		wantErr bool
	}{
		{"valid", New("500g pack", 500, 26000), false},
		{"zero rate allowed", New("sample", 100, 0), false},
		{"empty name", New("", 500, 26000), true},
		{"zero weight", New("bad", 0, 26000), true},
		{"negative weight", New("bad", -10, 26000), true},
		{"negative rate", New("bad", 500, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate(ctx)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	c := New("500g pack", 500, 26000)

	rate := types.MinorUnits(28000)
	active := false
	Patch{RateMinor: &rate, Active: &active}.Apply(c)

	assert.EqualValues(t, 28000, c.RateMinor)
	assert.False(t, c.Active)
	// untouched fields survive
	assert.Equal(t, "500g pack", c.Name)
	assert.Equal(t, int64(500), c.WeightGrams)
}

func TestNew_StartsActive(t *testing.T) {
	c := New("1kg pack", 1000, 50000)
	assert.True(t, c.Active)
	assert.False(t, c.ID.String() == "")
}
