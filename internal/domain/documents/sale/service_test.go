package sale

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
	created []*SaleTransaction
	deleted []id.ID
	byID    map[id.ID]*SaleTransaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*SaleTransaction)}
}

func (f *fakeRepo) Create(ctx context.Context, s *SaleTransaction) error {
	f.created = append(f.created, s)
	f.byID[s.ID] = s
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, saleID id.ID) (*SaleTransaction, error) {
	s, ok := f.byID[saleID]
	if !ok {
		return nil, apperror.NewNotFound("sale", saleID.String())
	}
	return s, nil
}

func (f *fakeRepo) Delete(ctx context.Context, saleID id.ID) error {
	f.deleted = append(f.deleted, saleID)
	delete(f.byID, saleID)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*SaleTransaction], error) {
	return domain.ListResult[*SaleTransaction]{}, nil
}

func (f *fakeRepo) TotalsInPeriod(ctx context.Context, from, to time.Time) (PeriodTotals, error) {
	return PeriodTotals{}, nil
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

type fakeStock struct {
	onHand map[id.ID]int64
	locked [][]id.ID
}

func (f *fakeStock) OnHandForUpdate(ctx context.Context, categoryIDs []id.ID) (map[id.ID]int64, error) {
	f.locked = append(f.locked, categoryIDs)
	out := make(map[id.ID]int64, len(categoryIDs))
	for _, catID := range categoryIDs {
		out[catID] = f.onHand[catID]
	}
	return out, nil
}

type fakeAuditor struct {
	actions []string
}

func (f *fakeAuditor) Record(ctx context.Context, action, entityType string, entityID id.ID, payload any) error {
	f.actions = append(f.actions, action+":"+entityType)
	return nil
}

type fakeNumberer struct {
	n int
}

func (f *fakeNumberer) Next(ctx context.Context, prefix string, period time.Time) (string, error) {
	f.n++
	return prefix + "-2026-00001", nil
}

type saleFixture struct {
	service  *Service
	repo     *fakeRepo
	stock    *fakeStock
	auditor  *fakeAuditor
	txm      *fakeTxManager
	category id.ID
}

func newSaleFixture(onHand int64) *saleFixture {
	cat := id.New()
	repo := newFakeRepo()
	stock := &fakeStock{onHand: map[id.ID]int64{cat: onHand}}
	auditor := &fakeAuditor{}
	txm := &fakeTxManager{}
	resolver := &fakeResolver{
		rates:  map[id.ID]types.MinorUnits{cat: 500},
		active: map[id.ID]bool{cat: true},
	}

	return &saleFixture{
		service:  NewService(repo, resolver, stock, auditor, &fakeNumberer{}, txm),
		repo:     repo,
		stock:    stock,
		auditor:  auditor,
		txm:      txm,
		category: cat,
	}
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("records balanced sale with frozen rate", func(t *testing.T) {
		fx := newSaleFixture(20)

		created, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			PaymentType: PaymentCash,
			Entries: []EntryInput{
				{CategoryID: fx.category, Taken: 10, Sold: 8, Replaced: 0},
			},
		})
		require.NoError(t, err)
		require.Len(t, fx.repo.created, 1)

		entry := created.Entries[0]
		assert.EqualValues(t, 500, entry.RateMinor)
		assert.EqualValues(t, 4000, entry.AmountMinor)
		assert.Equal(t, int64(2), entry.Returned) // derived
		assert.Equal(t, "SAL-2026-00001", created.Number)
		assert.Equal(t, []string{"create:sale"}, fx.auditor.actions)
		assert.Equal(t, 1, fx.txm.calls)
	})

	t.Run("rejects sale exceeding on-hand stock", func(t *testing.T) {
		fx := newSaleFixture(5)

		_, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			PaymentType: PaymentCash,
			Entries: []EntryInput{
				{CategoryID: fx.category, Taken: 10, Sold: 10},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsInsufficientStock(err))
		assert.Empty(t, fx.repo.created)
		assert.Empty(t, fx.auditor.actions)
	})

	t.Run("locks affected categories before checking", func(t *testing.T) {
		fx := newSaleFixture(20)

		_, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			PaymentType: PaymentCash,
			Entries: []EntryInput{
				{CategoryID: fx.category, Taken: 3, Sold: 3},
			},
		})
		require.NoError(t, err)
		require.Len(t, fx.stock.locked, 1)
		assert.Equal(t, []id.ID{fx.category}, fx.stock.locked[0])
	})

	t.Run("explicit returned overrides derivation", func(t *testing.T) {
		fx := newSaleFixture(20)
		returned := int64(1)

		_, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			PaymentType: PaymentCash,
			Entries: []EntryInput{
				// 10 != 8 + 1 + 0: explicit returned must fail the balance
				{CategoryID: fx.category, Taken: 10, Sold: 8, Returned: &returned},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsQuantityImbalance(err))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		fx := newSaleFixture(20)

		_, err := fx.service.Record(ctx, Input{
			Date:        time.Now(),
			PaymentType: PaymentCash,
			Entries: []EntryInput{
				{CategoryID: id.New(), Taken: 1, Sold: 1},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("rejects deactivated category", func(t *testing.T) {
		fx := newSaleFixture(20)
		resolver := &fakeResolver{
			rates:  map[id.ID]types.MinorUnits{fx.category: 500},
			active: map[id.ID]bool{fx.category: false},
		}
		svc := NewService(fx.repo, resolver, fx.stock, fx.auditor, &fakeNumberer{}, fx.txm)

		_, err := svc.Record(ctx, Input{
			Date:        time.Now(),
			PaymentType: PaymentCash,
			Entries: []EntryInput{
				{CategoryID: fx.category, Taken: 1, Sold: 1},
			},
		})
		require.Error(t, err)
	})

	t.Run("cash sale zeroes debtor amount", func(t *testing.T) {
		fx := newSaleFixture(20)

		created, err := fx.service.Record(ctx, Input{
			Date:              time.Now(),
			PaymentType:       PaymentCash,
			DebtorAmountMinor: 999,
			Entries: []EntryInput{
				{CategoryID: fx.category, Taken: 2, Sold: 2},
			},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 0, created.DebtorAmountMinor)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	fx := newSaleFixture(20)

	created, err := fx.service.Record(ctx, Input{
		Date:        time.Now(),
		PaymentType: PaymentCash,
		Entries: []EntryInput{
			{CategoryID: fx.category, Taken: 2, Sold: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, created.ID))
	assert.Equal(t, []id.ID{created.ID}, fx.repo.deleted)
	assert.Contains(t, fx.auditor.actions, "delete:sale")

	err = fx.service.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
