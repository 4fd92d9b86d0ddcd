package domain

import (
	"strings"
	"time"
)

// Status is the derived lifecycle state of an Ad. It is never stored; use
// AdStatus to compute it for a given instant.
type Status string

const (
	StatusNew      Status = "new"
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// statusWindow is the width of both the "new" and the "expiring" windows.
const statusWindow = 24 * time.Hour

// Ad represents one paid listing. Timestamps are kept in UTC.
type Ad struct {
	ID           string    `json:"id"`
	ClientID     ClientRef `json:"clientId"`
	AdName       string    `json:"adName"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"createdAt"`
	EndAt        time.Time `json:"endAt"`
	RenewedCount int       `json:"renewedCount"`
}

// AdStatus classifies ad at now. Precedence is strict: expired, then new,
// then expiring, then active. A fresh ad whose whole lifetime is under a
// day is therefore reported as new.
func AdStatus(ad Ad, now time.Time) Status {
	if ad.EndAt.Before(now) {
		return StatusExpired
	}
	if now.Sub(ad.CreatedAt) < statusWindow {
		return StatusNew
	}
	if ad.EndAt.Sub(now) < statusWindow {
		return StatusExpiring
	}
	return StatusActive
}

// IsActive reports whether ad has not yet ended at now.
func (a Ad) IsActive(now time.Time) bool { return !a.EndAt.Before(now) }

// IsExpiringWithin reports whether ad is active and ends no later than
// now+threshold.
func (a Ad) IsExpiringWithin(now time.Time, threshold time.Duration) bool {
	return a.IsActive(now) && !a.EndAt.After(now.Add(threshold))
}

// Validate checks the required fields and the endAt >= createdAt invariant.
func (a Ad) Validate() error {
	if err := a.ClientID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(a.AdName) == "" {
		return ValidationError{Field: "adName", Message: "is required"}
	}
	if a.EndAt.Before(a.CreatedAt) {
		return ValidationError{Field: "endAt", Message: "must not precede createdAt"}
	}
	if a.RenewedCount < 0 {
		return ValidationError{Field: "renewedCount", Message: "must not be negative"}
	}
	return nil
}

// AdCounts is the dashboard summary of the ad book at an instant.
type AdCounts struct {
	Active   int `json:"active"`
	Expiring int `json:"expiring"`
	New      int `json:"new"`
	Today    int `json:"today"`
}
