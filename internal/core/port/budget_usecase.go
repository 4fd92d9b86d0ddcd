package port

import (
	"context"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/domain"
)

// BudgetUseCase defines the Budget Ledger. Every mutation is serialized and
// written with a versioned write so concurrent callers cannot lose updates.
type BudgetUseCase interface {
	// GetOrCreateBudget returns the budget, creating it empty on first use.
	GetOrCreateBudget(ctx context.Context) (domain.Budget, error)
	// GetBalance returns the current balance without creating the budget.
	GetBalance(ctx context.Context) (decimal.Decimal, error)
	// SetBalance overwrites the balance.
	SetBalance(ctx context.Context, value decimal.Decimal) (domain.Budget, error)
	// AddPack records a pack purchase and credits its amount.
	AddPack(ctx context.Context) (domain.Purchase, error)
	// DeductForAd charges one ad. Overdraft is permitted.
	DeductForAd(ctx context.Context) (domain.Budget, error)
	// GetPurchases returns the purchase history, newest first.
	GetPurchases(ctx context.Context) ([]domain.Purchase, error)
	// CalculateAdsRemaining returns floor(balance / ad cost); negative when
	// ads are owed.
	CalculateAdsRemaining(ctx context.Context) (int64, error)
}
