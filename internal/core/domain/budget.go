package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetKey is the fixed key of the single budget record.
const BudgetKey = "main"

// PurchaseTypePack is the only purchase variant.
const PurchaseTypePack = "pack"

// Budget is the prepaid ledger. Balance may go negative; Spent only grows.
// Version is the store version the record was read at and is not part of
// the document.
type Budget struct {
	ID        string          `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	Spent     decimal.Decimal `json:"spent"`
	Purchases []Purchase      `json:"purchases"`
	Version   int64           `json:"-"`
}

// NewBudget returns an empty budget under the fixed key.
func NewBudget() Budget {
	return Budget{
		ID:        BudgetKey,
		Balance:   decimal.Zero,
		Spent:     decimal.Zero,
		Purchases: []Purchase{},
	}
}

// Purchase is an immutable ledger entry. Cost is informational only.
type Purchase struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Amounts are bounded so arithmetic on them stays cheap and counts fit in
// an int64.
const (
	maxAmountDigits = 15
	minAmountExp    = -18
)

var (
	maxAmount = decimal.New(1, maxAmountDigits)
	maxCount  = decimal.NewFromInt(math.MaxInt64)
	minCount  = decimal.NewFromInt(math.MinInt64)
)

// ValidAmount reports whether d is within the range a ledger amount may take:
// less than 10^15 in magnitude with at most 18 fractional digits.
func ValidAmount(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < minAmountExp || exp > maxAmountDigits {
		return false
	}
	return d.Abs().LessThan(maxAmount)
}

// AdsRemaining returns floor(balance / adCost). A negative balance yields a
// negative count, meaning ads owed. A non-positive adCost yields 0.
func AdsRemaining(balance, adCost decimal.Decimal) int64 {
	if !adCost.IsPositive() {
		return 0
	}
	q := balance.Div(adCost).Floor()
	switch {
	case q.GreaterThan(maxCount):
		return math.MaxInt64
	case q.LessThan(minCount):
		return math.MinInt64
	}
	return q.IntPart()
}

// CoerceAmount parses raw as a decimal, returning zero for anything that is
// not a number or lies outside ValidAmount.
func CoerceAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !ValidAmount(d) {
		return decimal.Zero
	}
	return d
}

// Validate checks that every amount of the budget is a ValidAmount.
func (b Budget) Validate() error {
	if !ValidAmount(b.Balance) {
		return ValidationError{Field: "balance", Message: "out of range"}
	}
	if !ValidAmount(b.Spent) {
		return ValidationError{Field: "spent", Message: "out of range"}
	}
	for i, p := range b.Purchases {
		if !ValidAmount(p.Amount) || !ValidAmount(p.Cost) {
			return ValidationError{Field: fmt.Sprintf("purchases[%d]", i), Message: "amount out of range"}
		}
	}
	return nil
}
