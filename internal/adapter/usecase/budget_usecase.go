package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// DefaultBudgetRetries bounds how often a mutation re-reads the budget
// after losing a versioned write.
const DefaultBudgetRetries = 5

// BudgetUseCase implements port.BudgetUseCase. Mutations are serialized
// in-process by a mutex and across processes by versioned writes, so two
// concurrent deductions can never both apply to the same snapshot.
type BudgetUseCase struct {
	mu         sync.Mutex
	budgets    collection[domain.Budget]
	clock      port.Clock
	ids        port.IDGenerator
	rules      domain.Rules
	maxRetries int
}

var _ port.BudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase creates the budget ledger. A non-positive maxRetries
// uses DefaultBudgetRetries.
func NewBudgetUseCase(store port.Store, clock port.Clock, ids port.IDGenerator, rules domain.Rules, maxRetries int) *BudgetUseCase {
	if maxRetries <= 0 {
		maxRetries = DefaultBudgetRetries
	}
	return &BudgetUseCase{
		budgets:    budgetCollection(store),
		clock:      clock,
		ids:        ids,
		rules:      rules,
		maxRetries: maxRetries,
	}
}

// GetOrCreateBudget returns the budget under domain.BudgetKey, creating an
// empty one the first time. Repeated calls never duplicate the record.
func (u *BudgetUseCase) GetOrCreateBudget(ctx context.Context) (domain.Budget, error) {
	return u.load(ctx)
}

// GetBalance returns the current balance. It never writes; a missing
// budget reads as zero.
func (u *BudgetUseCase) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	b, err := u.read(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Balance, nil
}

// SetBalance overwrites the balance as an administrative correction. Values
// outside domain.ValidAmount are rejected.
func (u *BudgetUseCase) SetBalance(ctx context.Context, value decimal.Decimal) (domain.Budget, error) {
	if !domain.ValidAmount(value) {
		return domain.Budget{}, domain.ValidationError{Field: "value", Message: "out of range"}
	}
	return u.mutate(ctx, func(b *domain.Budget) {
		b.Balance = value
	})
}

// AddPack appends a pack purchase and credits its amount.
func (u *BudgetUseCase) AddPack(ctx context.Context) (domain.Purchase, error) {
	purchase := domain.Purchase{
		ID:        u.ids.NewID(),
		Type:      domain.PurchaseTypePack,
		Amount:    u.rules.PackAmount,
		Cost:      u.rules.PackCost,
		CreatedAt: u.clock.Now(),
	}
	_, err := u.mutate(ctx, func(b *domain.Budget) {
		b.Balance = b.Balance.Add(purchase.Amount)
		b.Purchases = append(b.Purchases, purchase)
	})
	if err != nil {
		return domain.Purchase{}, err
	}
	return purchase, nil
}

// DeductForAd charges AdCost. The balance may go negative.
func (u *BudgetUseCase) DeductForAd(ctx context.Context) (domain.Budget, error) {
	return u.mutate(ctx, func(b *domain.Budget) {
		b.Balance = b.Balance.Sub(u.rules.AdCost)
		b.Spent = b.Spent.Add(u.rules.AdCost)
	})
}

// GetPurchases returns the purchase history, newest first.
func (u *BudgetUseCase) GetPurchases(ctx context.Context) ([]domain.Purchase, error) {
	b, err := u.read(ctx)
	if err != nil {
		return nil, err
	}
	purchases := slices.Clone(b.Purchases)
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	slices.SortStableFunc(purchases, newest(func(p domain.Purchase) time.Time { return p.CreatedAt }))
	return purchases, nil
}

// CalculateAdsRemaining returns floor(balance / AdCost).
func (u *BudgetUseCase) CalculateAdsRemaining(ctx context.Context) (int64, error) {
	b, err := u.read(ctx)
	if err != nil {
		return 0, err
	}
	return domain.AdsRemaining(b.Balance, u.rules.AdCost), nil
}

// mutate applies fn to a fresh read of the budget and writes it back only
// if nobody wrote in between, retrying on conflict.
func (u *BudgetUseCase) mutate(ctx context.Context, fn func(*domain.Budget)) (domain.Budget, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for range u.maxRetries {
		b, err := u.load(ctx)
		if err != nil {
			return domain.Budget{}, err
		}
		fn(&b)
		version, err := u.budgets.compareAndPut(ctx, b, b.Version)
		if errors.Is(err, port.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return domain.Budget{}, fmt.Errorf("write budget: %w", err)
		}
		b.Version = version
		return b, nil
	}
	return domain.Budget{}, fmt.Errorf("%w after %d attempts", domain.ErrBudgetContended, u.maxRetries)
}

// read returns the stored budget, or an empty one without persisting it.
func (u *BudgetUseCase) read(ctx context.Context) (domain.Budget, error) {
	b, version, ok, err := u.budgets.get(ctx, domain.BudgetKey)
	if err != nil {
		return domain.Budget{}, err
	}
	if !ok {
		return domain.NewBudget(), nil
	}
	b.Version = version
	return b, nil
}

// load reads the budget, creating it when absent. Losing the creation race
// to another writer is fine: the winner's record is read back.
func (u *BudgetUseCase) load(ctx context.Context) (domain.Budget, error) {
	for range 2 {
		b, version, ok, err := u.budgets.get(ctx, domain.BudgetKey)
		if err != nil {
			return domain.Budget{}, err
		}
		if ok {
			b.Version = version
			return b, nil
		}
		fresh := domain.NewBudget()
		version, err = u.budgets.compareAndPut(ctx, fresh, 0)
		if errors.Is(err, port.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return domain.Budget{}, fmt.Errorf("create budget: %w", err)
		}
		fresh.Version = version
		return fresh, nil
	}
	return domain.Budget{}, fmt.Errorf("%w: creation raced", domain.ErrBudgetContended)
}
