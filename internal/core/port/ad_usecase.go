package port

import (
	"context"
	"time"

	"pledge-data/internal/core/domain"
)

// AdUseCase defines the Ad Lifecycle Manager. It owns ad records and the
// time-based views over them. Status is always derived, never stored.
type AdUseCase interface {
	// CreateAd validates and persists a new ad whose end is the configured
	// lifetime after its creation instant.
	CreateAd(ctx context.Context, in CreateAdInput) (domain.Ad, error)
	// RenewAd extends EndAt from its current value by extraDays (the
	// configured default when zero) and increments RenewedCount.
	RenewAd(ctx context.Context, adID string, extraDays int) (domain.Ad, error)
	// UpdateAd replaces an existing ad after validating it.
	UpdateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error)
	// GetAd returns one ad or a NotFoundError.
	GetAd(ctx context.Context, adID string) (domain.Ad, error)
	// DeleteAd removes an ad; a missing id is not an error.
	DeleteAd(ctx context.Context, adID string) error
	// DeleteAdsByClient removes every ad of a client and returns the count.
	DeleteAdsByClient(ctx context.Context, clientID string) (int, error)
	// ListAllAds returns every ad, most recently created first.
	ListAllAds(ctx context.Context) ([]domain.Ad, error)
	// ListAdsByClient returns a client's ads, most recently created first.
	ListAdsByClient(ctx context.Context, clientID string) ([]domain.Ad, error)
	// GetActiveAds returns ads with EndAt >= now, soonest ending first.
	GetActiveAds(ctx context.Context, now time.Time) ([]domain.Ad, error)
	// GetExpiredAds returns ads with EndAt < now, most recently ended first.
	GetExpiredAds(ctx context.Context, now time.Time) ([]domain.Ad, error)
	// GetExpiringSoon returns active ads ending within threshold of now.
	GetExpiringSoon(ctx context.Context, threshold time.Duration, now time.Time) ([]domain.Ad, error)
	// SearchAds matches query against ad name, link and client name.
	SearchAds(ctx context.Context, query string) ([]domain.Ad, error)
	// SuggestAdNames returns up to limit distinct names the client used
	// most recently.
	SuggestAdNames(ctx context.Context, clientID string, limit int) ([]string, error)
	// CountAds summarises the ad book at now for the dashboard.
	CountAds(ctx context.Context, now time.Time) (domain.AdCounts, error)
}

// CreateAdInput carries the fields of a new ad. A zero CreatedAt means now.
type CreateAdInput struct {
	ClientID  string
	AdName    string
	Link      string
	CreatedAt time.Time
}

// PlacementUseCase couples ad creation with the budget deduction it funds.
type PlacementUseCase interface {
	// PlaceAd optionally creates the client named NewClientName, creates
	// the ad and deducts its cost. When the deduction fails the ad is
	// removed again and the error returned.
	PlaceAd(ctx context.Context, in PlaceAdInput) (PlaceAdResult, error)
}

// PlaceAdInput extends CreateAdInput with an inline client creation.
type PlaceAdInput struct {
	CreateAdInput
	NewClientName string
}

// PlaceAdResult is the created ad and the ledger state after deduction.
type PlaceAdResult struct {
	Ad     domain.Ad
	Budget domain.Budget
}
