package document_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/apperror"
)

func newTestRepo() *BaseDocumentRepo[*struct{}] {
	return NewBaseDocumentRepo(
		nil,
		"expenses",
		[]string{"id", "version", "created_at", "number", "date", "amount_minor"},
		func() *struct{} { return &struct{}{} },
	)
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to newest first", orderBy: "", want: "date DESC, created_at DESC"},
		{name: "bare field is ascending", orderBy: "date", want: "date ASC"},
		{name: "minus prefix is descending", orderBy: "-created_at", want: "created_at DESC"},
		{name: "plus prefix is ascending", orderBy: "+number", want: "number ASC"},
		{name: "column outside the allow-list", orderBy: "amount_minor; DROP TABLE expenses", wantErr: true},
		{name: "unknown column", orderBy: "password", wantErr: true},
		{name: "prefix without field", orderBy: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				require.Error(t, err)
				_, ok := apperror.AsAppError(err)
				assert.True(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
