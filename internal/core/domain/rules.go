package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rules holds the configurable business constants consumed by the core.
type Rules struct {
	// AdCost is deducted from the balance for every created ad.
	AdCost decimal.Decimal
	// PackAmount is the credit added by one pack purchase.
	PackAmount decimal.Decimal
	// PackCost is the real-world price of a pack.
	PackCost decimal.Decimal
	// AdPrice is the nominal revenue an ad brings in.
	AdPrice decimal.Decimal
	// AdLifetimeDays is the lifetime of a freshly created ad.
	AdLifetimeDays int
	// RenewalDays is the default renewal extension.
	RenewalDays int
	// ExpiringThreshold bounds the "expiring soon" view.
	ExpiringThreshold time.Duration
	// Location defines calendar days for daily buckets and "today".
	Location *time.Location
}

// DefaultRules mirrors the configuration defaults.
func DefaultRules() Rules {
	return Rules{
		AdCost:            decimal.NewFromInt(17),
		PackAmount:        decimal.NewFromInt(66),
		PackCost:          decimal.NewFromInt(60),
		AdPrice:           decimal.NewFromInt(300),
		AdLifetimeDays:    3,
		RenewalDays:       3,
		ExpiringThreshold: 24 * time.Hour,
		Location:          time.UTC,
	}
}

// StartOfDay returns midnight of t's calendar day in the rules' location.
func (r Rules) StartOfDay(t time.Time) time.Time {
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
