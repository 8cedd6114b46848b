package sale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahawa/internal/core/apperror"
	"kahawa/internal/core/id"
)

func TestDeriveReturned(t *testing.T) {
	tests := []struct {
		name                  string
		taken, sold, replaced int64
		want                  int64
	}{
		{"all sold", 10, 10, 0, 0},
		{"some returned", 10, 7, 1, 2},
		{"nothing sold", 5, 0, 0, 5},
		{"oversold clamps to zero", 10, 9, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveReturned(tt.taken, tt.sold, tt.replaced))
		})
	}
}

func TestSaleEntry_NetOut(t *testing.T) {
	e := SaleEntry{Taken: 10, Sold: 6, Returned: 3, Replaced: 1}
	assert.Equal(t, int64(7), e.NetOut())
}

func TestSaleTransaction_Normalize(t *testing.T) {
	t.Run("total is sum of entry amounts", func(t *testing.T) {
		s := New(time.Now())
		s.AddEntry(id.New(), 10, 8, 2, 0, 500)
		s.AddEntry(id.New(), 4, 4, 0, 0, 1200)
		s.Normalize()

		// 8*500 + 4*1200
		assert.EqualValues(t, 8800, s.TotalAmountMinor)
	})

	t.Run("cash sale forces debtor to zero", func(t *testing.T) {
		s := New(time.Now())
		s.PaymentType = PaymentCash
		s.DebtorAmountMinor = 300
		s.AddEntry(id.New(), 2, 2, 0, 0, 100)
		s.Normalize()

		assert.EqualValues(t, 0, s.DebtorAmountMinor)
	})

	t.Run("credit sale keeps debtor", func(t *testing.T) {
		s := New(time.Now())
		s.PaymentType = PaymentCredit
		s.BuyerName = "Mama Njeri"
		s.DebtorAmountMinor = 150
		s.AddEntry(id.New(), 2, 2, 0, 0, 100)
		s.Normalize()

		assert.EqualValues(t, 150, s.DebtorAmountMinor)
	})
}

func TestSaleTransaction_Validate(t *testing.T) {
	ctx := context.Background()

	valid := func() *SaleTransaction {
		s := New(time.Now())
		s.AddEntry(id.New(), 10, 7, 2, 1, 500)
		s.Normalize()
		return s
	}

	t.Run("balanced entry passes", func(t *testing.T) {
		require.NoError(t, valid().Validate(ctx))
	})

	t.Run("imbalanced entry rejected", func(t *testing.T) {
		s := valid()
		s.Entries[0].Sold = 5 // taken 10 != 5+2+1
		s.Normalize()

		err := s.Validate(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsQuantityImbalance(err))
	})

	t.Run("no entries rejected", func(t *testing.T) {
		s := New(time.Now())
		require.Error(t, s.Validate(ctx))
	})

	t.Run("zero taken balances against zero dispositions", func(t *testing.T) {
		s := New(time.Now())
		s.AddEntry(id.New(), 0, 0, 0, 0, 500)
		s.Normalize()
		require.NoError(t, s.Validate(ctx))
	})

	t.Run("negative taken rejected", func(t *testing.T) {
		s := New(time.Now())
		s.AddEntry(id.New(), -1, 0, 0, 0, 500)
		require.Error(t, s.Validate(ctx))
	})

	t.Run("negative disposition rejected", func(t *testing.T) {
		s := New(time.Now())
		s.AddEntry(id.New(), 2, 3, -1, 0, 500)
		require.Error(t, s.Validate(ctx))
	})

	t.Run("credit sale without buyer name passes", func(t *testing.T) {
		s := valid()
		s.PaymentType = PaymentCredit
		s.BuyerName = ""
		require.NoError(t, s.Validate(ctx))
	})

	t.Run("unknown payment type rejected", func(t *testing.T) {
		s := valid()
		s.PaymentType = "mpesa"
		require.Error(t, s.Validate(ctx))
	})

	t.Run("debtor may exceed transaction total", func(t *testing.T) {
		// carried-over debt from earlier trips can sit on one transaction
		s := valid()
		s.PaymentType = PaymentCredit
		s.DebtorAmountMinor = s.TotalAmountMinor + 1
		require.NoError(t, s.Validate(ctx))
	})

	t.Run("negative debtor rejected", func(t *testing.T) {
		s := valid()
		s.PaymentType = PaymentCredit
		s.DebtorAmountMinor = -1
		require.Error(t, s.Validate(ctx))
	})
}

func TestSaleTransaction_TakenByCategory(t *testing.T) {
	cat := id.New()
	other := id.New()

	s := New(time.Now())
	s.AddEntry(cat, 5, 5, 0, 0, 100)
	s.AddEntry(other, 3, 3, 0, 0, 100)
	s.AddEntry(cat, 2, 2, 0, 0, 100)

	taken := s.TakenByCategory()
	assert.Equal(t, int64(7), taken[cat])
	assert.Equal(t, int64(3), taken[other])
}

func TestSaleTransaction_AddEntry_RevenueCountsSoldOnly(t *testing.T) {
	s := New(time.Now())
	s.AddEntry(id.New(), 10, 4, 5, 1, 250)

	assert.EqualValues(t, 1000, s.Entries[0].AmountMinor)
}
