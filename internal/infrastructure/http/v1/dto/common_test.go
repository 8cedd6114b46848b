package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/id"
)

func TestListRequest_ToFilter(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		r := ListRequest{}
		filter, err := r.ToFilter()
		require.NoError(t, err)

		assert.Equal(t, 50, filter.Limit)
		assert.Nil(t, filter.DateFrom)
		assert.Nil(t, filter.DateTo)
	})

	t.Run("dateTo covers whole day", func(t *testing.T) {
		r := ListRequest{DateFrom: "2026-08-01", DateTo: "2026-08-31"}
		filter, err := r.ToFilter()
		require.NoError(t, err)

		require.NotNil(t, filter.DateTo)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
		assert.Equal(t, 23, filter.DateTo.Hour())
		assert.Equal(t, 31, filter.DateTo.Day())
	})

	t.Run("bad date rejected", func(t *testing.T) {
		r := ListRequest{DateFrom: "31/08/2026"}
		_, err := r.ToFilter()
		require.Error(t, err)
	})
}

func TestParseID(t *testing.T) {
	valid := id.New()

	parsed, err := ParseID(valid.String())
	require.NoError(t, err)
	assert.Equal(t, valid, parsed)

	_, err = ParseID("not-a-uuid")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-31", "date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("", "date")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("soon", "date")
	require.Error(t, err)
}
