package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
	"pledge-data/internal/core/port/mocks"
)

func TestGetOrCreateBudgetIsLazyAndSingle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	recs, err := f.store.GetAll(ctx, port.CollectionBudget)
	require.NoError(t, err)
	assert.Empty(t, recs)

	for range 3 {
		b, err := f.budget.GetOrCreateBudget(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.BudgetKey, b.ID)
		assert.True(t, b.Balance.IsZero())
		assert.True(t, b.Spent.IsZero())
		assert.Empty(t, b.Purchases)
	}

	recs, err = f.store.GetAll(ctx, port.CollectionBudget)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.BudgetKey, recs[0].Key)
}

func TestAddPackAndDeduct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.budget.AddPack(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseTypePack, p.Type)
	assert.Equal(t, "66", p.Amount.String())
	assert.Equal(t, "60", p.Cost.String())
	assert.Equal(t, t0, p.CreatedAt)

	remaining, err := f.budget.CalculateAdsRemaining(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, remaining)

	b, err := f.budget.DeductForAd(ctx)
	require.NoError(t, err)
	assert.Equal(t, "49", b.Balance.String())
	assert.Equal(t, "17", b.Spent.String())

	balance, err := f.budget.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "49", balance.String())

	remaining, err = f.budget.CalculateAdsRemaining(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, remaining)
}

func TestDeductAllowsOverdraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for range 2 {
		_, err := f.budget.DeductForAd(ctx)
		require.NoError(t, err)
	}
	b, err := f.budget.GetOrCreateBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-34", b.Balance.String())
	assert.Equal(t, "34", b.Spent.String())

	remaining, err := f.budget.CalculateAdsRemaining(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, -2, remaining)

	_, err = f.budget.SetBalance(ctx, decimal.RequireFromString("-1"))
	require.NoError(t, err)
	remaining, err = f.budget.CalculateAdsRemaining(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, -1, remaining)
}

func TestSetBalanceKeepsHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.budget.AddPack(ctx)
	require.NoError(t, err)
	_, err = f.budget.DeductForAd(ctx)
	require.NoError(t, err)

	b, err := f.budget.SetBalance(ctx, decimal.RequireFromString("100.5"))
	require.NoError(t, err)
	assert.Equal(t, "100.5", b.Balance.String())
	assert.Equal(t, "17", b.Spent.String())
	assert.Len(t, b.Purchases, 1)
}

func TestSetBalanceRejectsOutOfRange(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.budget.SetBalance(ctx, decimal.New(1, 5000000))
	assert.True(t, domain.IsValidation(err), "got %v", err)

	balance, err := f.budget.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestGetPurchasesNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	empty, err := f.budget.GetPurchases(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := f.budget.AddPack(ctx)
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	second, err := f.budget.AddPack(ctx)
	require.NoError(t, err)

	purchases, err := f.budget.GetPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, second.ID, purchases[0].ID)
	assert.Equal(t, first.ID, purchases[1].ID)

	balance, err := f.budget.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "132", balance.String())
}

func TestConcurrentDeductionsAreNotLost(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	// A second ledger instance over the same store only has versioned
	// writes to protect it.
	other := NewBudgetUseCase(f.store, f.clock, f.ids, f.rules, 100)

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc := f.budget
			if i%2 == 1 {
				uc = other
			}
			for {
				_, err := uc.DeductForAd(ctx)
				if errors.Is(err, domain.ErrBudgetContended) {
					continue
				}
				errs <- err
				return
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	b, err := f.budget.GetOrCreateBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-680", b.Balance.String())
	assert.Equal(t, "680", b.Spent.String())
}

func TestMutateRetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockStore(t)
	uc := NewBudgetUseCase(store, newFakeClock(t0), &seqIDs{}, domain.DefaultRules(), 3)

	stored, err := budgetCollection(store).encode(domain.NewBudget())
	require.NoError(t, err)
	stored.Version = 4

	store.EXPECT().Get(mock.Anything, port.CollectionBudget, domain.BudgetKey).Return(stored, true, nil).Times(2)
	store.EXPECT().CompareAndPut(mock.Anything, port.CollectionBudget, mock.Anything, int64(4)).
		Return(port.Record{}, port.ErrVersionConflict).Once()
	store.EXPECT().CompareAndPut(mock.Anything, port.CollectionBudget, mock.Anything, int64(4)).
		RunAndReturn(func(_ context.Context, _ string, rec port.Record, _ int64) (port.Record, error) {
			rec.Version = 5
			return rec, nil
		}).Once()

	b, err := uc.DeductForAd(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-17", b.Balance.String())
	assert.EqualValues(t, 5, b.Version)
}

func TestMutateGivesUpAfterMaxRetries(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockStore(t)
	uc := NewBudgetUseCase(store, newFakeClock(t0), &seqIDs{}, domain.DefaultRules(), 2)

	stored, err := budgetCollection(store).encode(domain.NewBudget())
	require.NoError(t, err)
	stored.Version = 1

	store.EXPECT().Get(mock.Anything, port.CollectionBudget, domain.BudgetKey).Return(stored, true, nil).Times(2)
	store.EXPECT().CompareAndPut(mock.Anything, port.CollectionBudget, mock.Anything, int64(1)).
		Return(port.Record{}, port.ErrVersionConflict).Times(2)

	_, err = uc.DeductForAd(ctx)
	assert.ErrorIs(t, err, domain.ErrBudgetContended)
}

func TestMutatePropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockStore(t)
	uc := NewBudgetUseCase(store, newFakeClock(t0), &seqIDs{}, domain.DefaultRules(), 0)

	boom := errors.New("connection reset")
	store.EXPECT().Get(mock.Anything, port.CollectionBudget, domain.BudgetKey).Return(port.Record{}, false, nil).Once()
	store.EXPECT().CompareAndPut(mock.Anything, port.CollectionBudget, mock.Anything, int64(0)).
		Return(port.Record{}, boom).Once()

	_, err := uc.AddPack(ctx)
	assert.ErrorIs(t, err, boom)
}
