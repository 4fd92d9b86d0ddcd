package domain

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdsRemaining(t *testing.T) {
	cost := decimal.NewFromInt(17)
	tests := []struct {
		balance string
		want    int64
	}{
		{"0", 0},
		{"16.99", 0},
		{"17", 1},
		{"66", 3},
		{"-1", -1},
		{"-17", -1},
		{"-18", -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AdsRemaining(decimal.RequireFromString(tt.balance), cost), "balance %s", tt.balance)
	}
	assert.Zero(t, AdsRemaining(decimal.NewFromInt(100), decimal.Zero))
}

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, "12.5", CoerceAmount(" 12.5 ").String())
	assert.Equal(t, "-3", CoerceAmount("-3").String())
	assert.True(t, CoerceAmount("abc").IsZero())
	assert.True(t, CoerceAmount("").IsZero())

	for _, raw := range []string{"1e5000000", "-1e5000000", "1e-5000000", "1000000000000000", "1e15"} {
		assert.True(t, CoerceAmount(raw).IsZero(), raw)
	}
	assert.Equal(t, "999999999999999.5", CoerceAmount("999999999999999.5").String())
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(decimal.Zero))
	assert.True(t, ValidAmount(decimal.RequireFromString("-99999.25")))
	assert.True(t, ValidAmount(decimal.New(5, -18)))
	assert.False(t, ValidAmount(decimal.New(5, -19)))
	assert.False(t, ValidAmount(decimal.New(1, 15)))
	assert.False(t, ValidAmount(decimal.New(-1, 15)))
	assert.False(t, ValidAmount(decimal.New(1, 5000000)))
}

func TestAdsRemainingClampsToInt64(t *testing.T) {
	tiny := decimal.New(1, -18)
	assert.Equal(t, int64(math.MaxInt64), AdsRemaining(decimal.New(1, 14), tiny))
	assert.Equal(t, int64(math.MinInt64), AdsRemaining(decimal.New(-1, 14), tiny))
}

func TestBudgetValidate(t *testing.T) {
	b := NewBudget()
	assert.NoError(t, b.Validate())

	b.Balance = decimal.New(1, 20)
	assert.True(t, IsValidation(b.Validate()))

	b = NewBudget()
	b.Purchases = []Purchase{{Amount: decimal.NewFromInt(66), Cost: decimal.New(1, 40)}}
	assert.True(t, IsValidation(b.Validate()))
}

func TestNewBudget(t *testing.T) {
	b := NewBudget()
	assert.Equal(t, BudgetKey, b.ID)
	assert.True(t, b.Balance.IsZero())
	assert.NotNil(t, b.Purchases)
}

func TestRulesStartOfDay(t *testing.T) {
	casablanca := time.FixedZone("UTC+1", 3600)
	r := DefaultRules()
	r.Location = casablanca

	// 23:30 UTC is already the next calendar day at UTC+1.
	got := r.StartOfDay(time.Date(2024, 5, 20, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 5, 21, 0, 0, 0, 0, casablanca), got)

	r.Location = nil
	got = r.StartOfDay(time.Date(2024, 5, 20, 23, 30, 0, 0, time.UTC))
	assert.True(t, got.Equal(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)))
}
