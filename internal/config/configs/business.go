package configs

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/domain"
)

// Business holds the ledger and reporting constants. Money values are
// parsed as decimals.
type Business struct {
	AdCost            decimal.Decimal `env:"AD_COST" envDefault:"17"`
	PackAmount        decimal.Decimal `env:"PACK_AMOUNT" envDefault:"66"`
	PackCost          decimal.Decimal `env:"PACK_COST" envDefault:"60"`
	AdPrice           decimal.Decimal `env:"AD_PRICE" envDefault:"300"`
	AdLifetimeDays    int             `env:"AD_LIFETIME_DAYS" envDefault:"3"`
	RenewalDays       int             `env:"RENEWAL_DAYS" envDefault:"3"`
	ExpiringThreshold time.Duration   `env:"EXPIRING_THRESHOLD" envDefault:"24h"`
	// Timezone names the IANA zone that defines calendar days.
	Timezone         string `env:"TIMEZONE" envDefault:"Local"`
	BudgetMaxRetries int    `env:"BUDGET_MAX_RETRIES" envDefault:"5"`
}

// Rules validates the section and converts it into domain.Rules.
func (c Business) Rules() (domain.Rules, error) {
	if c.AdCost.IsNegative() {
		return domain.Rules{}, fmt.Errorf("ad cost must not be negative, got %s", c.AdCost)
	}
	if !c.PackAmount.IsPositive() {
		return domain.Rules{}, fmt.Errorf("pack amount must be positive, got %s", c.PackAmount)
	}
	if c.AdLifetimeDays <= 0 {
		return domain.Rules{}, fmt.Errorf("ad lifetime must be at least one day, got %d", c.AdLifetimeDays)
	}
	if c.RenewalDays <= 0 {
		return domain.Rules{}, fmt.Errorf("renewal must be at least one day, got %d", c.RenewalDays)
	}
	if c.ExpiringThreshold <= 0 {
		return domain.Rules{}, fmt.Errorf("expiring threshold must be positive, got %s", c.ExpiringThreshold)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return domain.Rules{}, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return domain.Rules{
		AdCost:            c.AdCost,
		PackAmount:        c.PackAmount,
		PackCost:          c.PackCost,
		AdPrice:           c.AdPrice,
		AdLifetimeDays:    c.AdLifetimeDays,
		RenewalDays:       c.RenewalDays,
		ExpiringThreshold: c.ExpiringThreshold,
		Location:          loc,
	}, nil
}
