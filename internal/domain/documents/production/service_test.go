package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
	"kahawa/internal/core/types"
	"kahawa/internal/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	created []*ProductionBatch
	deleted []id.ID
	byID    map[id.ID]*ProductionBatch
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*ProductionBatch)}
}

func (f *fakeRepo) Create(ctx context.Context, b *ProductionBatch) error {
	f.created = append(f.created, b)
	f.byID[b.ID] = b
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, batchID id.ID) (*ProductionBatch, error) {
	b, ok := f.byID[batchID]
	if !ok {
		return nil, apperror.NewNotFound("production batch", batchID.String())
	}
	return b, nil
}

func (f *fakeRepo) Delete(ctx context.Context, batchID id.ID) error {
	f.deleted = append(f.deleted, batchID)
	delete(f.byID, batchID)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ProductionBatch], error) {
	return domain.ListResult[*ProductionBatch]{}, nil
}

func (f *fakeRepo) ProducedInPeriod(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

type fakeResolver struct {
	rates  map[id.ID]types.MinorUnits
	active map[id.ID]bool
}

func (f *fakeResolver) Resolve(ctx context.Context, categoryID id.ID) (types.MinorUnits, bool, error) {
	rate, ok := f.rates[categoryID]
	if !ok {
		return 0, false, apperror.NewNotFound("piece category", categoryID.String())
	}
	return rate, f.active[categoryID], nil
}

type fakeAuditor struct {
	actions []string
}

func (f *fakeAuditor) Record(ctx context.Context, action, entityType string, entityID id.ID, payload any) error {
	f.actions = append(f.actions, action)
	return nil
}

type fakeNumberer struct{}

func (fakeNumberer) Next(ctx context.Context, prefix string, period time.Time) (string, error) {
	return prefix + "-2026-00007", nil
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()
	cat := id.New()

	newService := func(active bool) (*Service, *fakeRepo, *fakeAuditor) {
		repo := newFakeRepo()
		auditor := &fakeAuditor{}
		resolver := &fakeResolver{
			rates:  map[id.ID]types.MinorUnits{cat: 26000},
			active: map[id.ID]bool{cat: active},
		}
		return NewService(repo, resolver, auditor, fakeNumberer{}, fakeTxManager{}), repo, auditor
	}

	t.Run("captures current rate into entries", func(t *testing.T) {
		svc, repo, auditor := newService(true)

		created, err := svc.Record(ctx, Input{
			Date:    time.Now(),
			Entries: []EntryInput{{CategoryID: cat, Quantity: 40}},
		})
		require.NoError(t, err)
		require.Len(t, repo.created, 1)

		e := created.Entries[0]
		assert.EqualValues(t, 26000, e.RateMinor)
		assert.EqualValues(t, 40*26000, e.AmountMinor)
		assert.Equal(t, "PRD-2026-00007", created.Number)
		assert.Equal(t, []string{"create"}, auditor.actions)
	})

	t.Run("rejects deactivated category", func(t *testing.T) {
		svc, repo, _ := newService(false)

		_, err := svc.Record(ctx, Input{
			Date:    time.Now(),
			Entries: []EntryInput{{CategoryID: cat, Quantity: 1}},
		})
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc, _, _ := newService(true)

		_, err := svc.Record(ctx, Input{
			Date:    time.Now(),
			Entries: []EntryInput{{CategoryID: id.New(), Quantity: 1}},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	cat := id.New()

	repo := newFakeRepo()
	auditor := &fakeAuditor{}
	resolver := &fakeResolver{
		rates:  map[id.ID]types.MinorUnits{cat: 500},
		active: map[id.ID]bool{cat: true},
	}
	svc := NewService(repo, resolver, auditor, fakeNumberer{}, fakeTxManager{})

	created, err := svc.Record(ctx, Input{
		Date:    time.Now(),
		Entries: []EntryInput{{CategoryID: cat, Quantity: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, []id.ID{created.ID}, repo.deleted)
	assert.Equal(t, []string{"create", "delete"}, auditor.actions)

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
