package expense

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

// Test doubles

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeRepo struct {
	created []*ExpenseEntry
	updated []*ExpenseEntry
	deleted []id.ID
	byID    map[id.ID]*ExpenseEntry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*ExpenseEntry)}
}

func (f *fakeRepo) Create(ctx context.Context, e *ExpenseEntry) error {
	f.created = append(f.created, e)
	f.byID[e.ID] = e
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, expenseID id.ID) (*ExpenseEntry, error) {
	e, ok := f.byID[expenseID]
	if !ok {
		return nil, apperror.NewNotFound("expense", expenseID.String())
	}
	return e, nil
}

func (f *fakeRepo) Update(ctx context.Context, e *ExpenseEntry) error {
	f.updated = append(f.updated, e)
	f.byID[e.ID] = e
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, expenseID id.ID) error {
	f.deleted = append(f.deleted, expenseID)
	delete(f.byID, expenseID)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ExpenseEntry], error) {
	return domain.ListResult[*ExpenseEntry]{}, nil
}

func (f *fakeRepo) TotalInPeriod(ctx context.Context, from, to time.Time) (types.MinorUnits, error) {
	return 0, nil
}

func (f *fakeRepo) BreakdownByType(ctx context.Context, from, to time.Time) ([]TypeBreakdown, error) {
	return nil, nil
}

type fakeChecker struct {
	known map[id.ID]bool
}

func (f *fakeChecker) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	return f.known[entityID], nil
}

type fakeAuditor struct {
	actions []string
}

func (f *fakeAuditor) Record(ctx context.Context, action, entityType string, entityID id.ID, payload any) error {
	f.actions = append(f.actions, action+":"+entityType)
	return nil
}

type fakeNumberer struct{}

func (f *fakeNumberer) Next(ctx context.Context, prefix string, period time.Time) (string, error) {
	return prefix + "-2026-00001", nil
}

type expenseFixture struct {
	service *Service
	repo    *fakeRepo
	auditor *fakeAuditor
	typeID  id.ID
	saleID  id.ID
}

func newExpenseFixture() *expenseFixture {
	typeID := id.New()
	saleID := id.New()
	repo := newFakeRepo()
	auditor := &fakeAuditor{}
	typeChecker := &fakeChecker{known: map[id.ID]bool{typeID: true}}
	saleChecker := &fakeChecker{known: map[id.ID]bool{saleID: true}}

	return &expenseFixture{
		service: NewService(repo, typeChecker, saleChecker, auditor, &fakeNumberer{}, &fakeTxManager{}),
		repo:    repo,
		auditor: auditor,
		typeID:  typeID,
		saleID:  saleID,
	}
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("records expense with number", func(t *testing.T) {
		fx := newExpenseFixture()

		created, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			TypeID:      fx.typeID,
			AmountMinor: 15000,
			Description: "fuel for the route",
		})
		require.NoError(t, err)
		require.Len(t, fx.repo.created, 1)
		assert.Equal(t, "EXP-2026-00001", created.Number)
		assert.Equal(t, []string{"create:expense"}, fx.auditor.actions)
	})

	t.Run("records expense linked to a sale", func(t *testing.T) {
		fx := newExpenseFixture()

		created, err := fx.service.Record(ctx, Input{
			Date:         time.Now(),
			TypeID:       fx.typeID,
			AmountMinor:  5000,
			LinkedSaleID: &fx.saleID,
		})
		require.NoError(t, err)
		require.NotNil(t, created.LinkedSaleID)
		assert.Equal(t, fx.saleID, *created.LinkedSaleID)
	})

	t.Run("rejects unknown expense type", func(t *testing.T) {
		fx := newExpenseFixture()

		_, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			TypeID:      id.New(),
			AmountMinor: 5000,
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Empty(t, fx.repo.created)
	})

	t.Run("rejects unknown linked sale", func(t *testing.T) {
		fx := newExpenseFixture()
		ghost := id.New()

		_, err := fx.service.Record(ctx, Input{
			Date:         time.Now(),
			TypeID:       fx.typeID,
			AmountMinor:  5000,
			LinkedSaleID: &ghost,
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		fx := newExpenseFixture()

		_, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			TypeID:      fx.typeID,
			AmountMinor: 0,
		})
		require.Error(t, err)
		assert.Empty(t, fx.auditor.actions)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	fx := newExpenseFixture()

	created, err := fx.service.Record(ctx, Input{
		Date:        time.Now(),
		TypeID:      fx.typeID,
		AmountMinor: 15000,
	})
	require.NoError(t, err)

	t.Run("patches amount and links sale", func(t *testing.T) {
		amount := types.MinorUnits(20000)

		updated, err := fx.service.Update(ctx, created.ID, Patch{
			AmountMinor:  &amount,
			LinkedSaleID: &fx.saleID,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 20000, updated.AmountMinor)
		require.NotNil(t, updated.LinkedSaleID)
		assert.Equal(t, fx.saleID, *updated.LinkedSaleID)
		assert.Contains(t, fx.auditor.actions, "update:expense")
	})

	t.Run("nil uuid clears the sale link", func(t *testing.T) {
		unlink := id.Nil()

		updated, err := fx.service.Update(ctx, created.ID, Patch{
			LinkedSaleID: &unlink,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.LinkedSaleID)
	})

	t.Run("unknown expense is not found", func(t *testing.T) {
		_, err := fx.service.Update(ctx, id.New(), Patch{})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("patched amount is still validated", func(t *testing.T) {
		bad := types.MinorUnits(-1)

		_, err := fx.service.Update(ctx, created.ID, Patch{AmountMinor: &bad})
		require.Error(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	fx := newExpenseFixture()

	created, err := fx.service.Record(ctx, Input{
		Date:        time.Now(),
		TypeID:      fx.typeID,
		AmountMinor: 15000,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, created.ID))
	assert.Equal(t, []id.ID{created.ID}, fx.repo.deleted)
	assert.Contains(t, fx.auditor.actions, "delete:expense")

	err = fx.service.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
