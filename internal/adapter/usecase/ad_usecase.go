package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// defaultSuggestions is how many ad names SuggestAdNames returns when the
// caller does not ask for a number.
const defaultSuggestions = 3

// AdUseCase implements port.AdUseCase on top of a port.Store. It is the
// only writer of ad lifecycle fields.
type AdUseCase struct {
	ads     collection[domain.Ad]
	clients collection[domain.Client]
	clock   port.Clock
	ids     port.IDGenerator
	rules   domain.Rules
}

var _ port.AdUseCase = (*AdUseCase)(nil)

// NewAdUseCase creates the ad lifecycle manager.
func NewAdUseCase(store port.Store, clock port.Clock, ids port.IDGenerator, rules domain.Rules) *AdUseCase {
	return &AdUseCase{
		ads:     adCollection(store),
		clients: clientCollection(store),
		clock:   clock,
		ids:     ids,
		rules:   rules,
	}
}

// CreateAd validates in and persists a new ad that ends AdLifetimeDays
// after its creation.
func (u *AdUseCase) CreateAd(ctx context.Context, in port.CreateAdInput) (domain.Ad, error) {
	created := in.CreatedAt
	if created.IsZero() {
		created = u.clock.Now()
	}
	created = created.UTC()
	ad := domain.Ad{
		ID:        u.ids.NewID(),
		ClientID:  domain.ClientRef(strings.TrimSpace(in.ClientID)),
		AdName:    strings.TrimSpace(in.AdName),
		Link:      strings.TrimSpace(in.Link),
		CreatedAt: created,
		EndAt:     created.AddDate(0, 0, u.rules.AdLifetimeDays),
	}
	if err := ad.Validate(); err != nil {
		return domain.Ad{}, err
	}
	if err := u.ads.put(ctx, ad); err != nil {
		return domain.Ad{}, err
	}
	return ad, nil
}

// RenewAd pushes EndAt forward from its current value, not from now, so an
// expired ad becomes active again. Zero extraDays means RenewalDays.
func (u *AdUseCase) RenewAd(ctx context.Context, adID string, extraDays int) (domain.Ad, error) {
	if extraDays == 0 {
		extraDays = u.rules.RenewalDays
	}
	if extraDays < 0 {
		return domain.Ad{}, domain.ValidationError{Field: "extraDays", Message: "must not be negative"}
	}
	ad, err := u.GetAd(ctx, adID)
	if err != nil {
		return domain.Ad{}, err
	}
	if ad.EndAt.IsZero() {
		ad.EndAt = ad.CreatedAt
	}
	ad.EndAt = ad.EndAt.AddDate(0, 0, extraDays)
	ad.RenewedCount++
	if err = u.ads.put(ctx, ad); err != nil {
		return domain.Ad{}, err
	}
	return ad, nil
}

// UpdateAd replaces the client reference, name and link of an existing ad.
// Lifecycle fields are kept from the stored record.
func (u *AdUseCase) UpdateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error) {
	if strings.TrimSpace(ad.ID) == "" {
		return domain.Ad{}, domain.ValidationError{Field: "id", Message: "is required"}
	}
	stored, err := u.GetAd(ctx, ad.ID)
	if err != nil {
		return domain.Ad{}, err
	}
	stored.ClientID = domain.ClientRef(strings.TrimSpace(ad.ClientID.String()))
	stored.AdName = strings.TrimSpace(ad.AdName)
	stored.Link = strings.TrimSpace(ad.Link)
	if err = stored.Validate(); err != nil {
		return domain.Ad{}, err
	}
	if err = u.ads.put(ctx, stored); err != nil {
		return domain.Ad{}, err
	}
	return stored, nil
}

// GetAd returns the ad with adID.
func (u *AdUseCase) GetAd(ctx context.Context, adID string) (domain.Ad, error) {
	ad, _, ok, err := u.ads.get(ctx, adID)
	if err != nil {
		return domain.Ad{}, err
	}
	if !ok {
		return domain.Ad{}, domain.NotFoundError{Kind: "ad", ID: adID}
	}
	return ad, nil
}

// DeleteAd removes an ad. Deleting a missing ad succeeds.
func (u *AdUseCase) DeleteAd(ctx context.Context, adID string) error {
	return u.ads.delete(ctx, adID)
}

// DeleteAdsByClient removes every ad referencing clientID.
func (u *AdUseCase) DeleteAdsByClient(ctx context.Context, clientID string) (int, error) {
	ads, err := u.ads.byIndex(ctx, port.IndexClientID, clientID)
	if err != nil {
		return 0, err
	}
	for i, ad := range ads {
		if err = u.ads.delete(ctx, ad.ID); err != nil {
			return i, err
		}
	}
	return len(ads), nil
}

// ListAllAds returns every ad, most recently created first.
func (u *AdUseCase) ListAllAds(ctx context.Context) ([]domain.Ad, error) {
	ads, err := u.ads.all(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(ads, newest(func(a domain.Ad) time.Time { return a.CreatedAt }))
	return ads, nil
}

// ListAdsByClient returns the ads of one client, most recent first.
func (u *AdUseCase) ListAdsByClient(ctx context.Context, clientID string) ([]domain.Ad, error) {
	ads, err := u.ads.byIndex(ctx, port.IndexClientID, clientID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(ads, newest(func(a domain.Ad) time.Time { return a.CreatedAt }))
	return ads, nil
}

// GetActiveAds returns ads with EndAt >= now, soonest ending first.
func (u *AdUseCase) GetActiveAds(ctx context.Context, now time.Time) ([]domain.Ad, error) {
	ads, err := u.filter(ctx, func(a domain.Ad) bool { return a.IsActive(now) })
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(ads, func(a, b domain.Ad) int { return a.EndAt.Compare(b.EndAt) })
	return ads, nil
}

// GetExpiredAds returns ads with EndAt < now, most recently ended first.
func (u *AdUseCase) GetExpiredAds(ctx context.Context, now time.Time) ([]domain.Ad, error) {
	ads, err := u.filter(ctx, func(a domain.Ad) bool { return !a.IsActive(now) })
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(ads, func(a, b domain.Ad) int { return b.EndAt.Compare(a.EndAt) })
	return ads, nil
}

// GetExpiringSoon returns active ads that end within threshold of now,
// soonest ending first. A non-positive threshold uses ExpiringThreshold.
func (u *AdUseCase) GetExpiringSoon(ctx context.Context, threshold time.Duration, now time.Time) ([]domain.Ad, error) {
	if threshold <= 0 {
		threshold = u.rules.ExpiringThreshold
	}
	active, err := u.GetActiveAds(ctx, now)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(active, func(a domain.Ad) bool {
		return !a.IsExpiringWithin(now, threshold)
	}), nil
}

// SearchAds matches query case-insensitively against ad name, link and the
// resolved client name. An empty query lists every ad.
func (u *AdUseCase) SearchAds(ctx context.Context, query string) ([]domain.Ad, error) {
	ads, err := u.ListAllAds(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ads, nil
	}
	clients, err := u.clients.all(ctx)
	if err != nil {
		return nil, err
	}
	dir := domain.NewClientDirectory(clients)
	return slices.DeleteFunc(ads, func(a domain.Ad) bool {
		name := ""
		if c, ok := dir.Resolve(a.ClientID); ok {
			name = c.Name
		}
		return !strings.Contains(strings.ToLower(a.AdName), q) &&
			!strings.Contains(strings.ToLower(a.Link), q) &&
			!strings.Contains(name, q)
	}), nil
}

// SuggestAdNames looks at the client's limit most recent ads and returns
// their trimmed names, newest first, dropping case-insensitive repeats.
func (u *AdUseCase) SuggestAdNames(ctx context.Context, clientID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultSuggestions
	}
	ads, err := u.ListAdsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	ads = slices.DeleteFunc(ads, func(a domain.Ad) bool { return a.AdName == "" })
	if len(ads) > limit {
		ads = ads[:limit]
	}
	seen := make(map[string]struct{}, len(ads))
	names := make([]string, 0, len(ads))
	for _, a := range ads {
		name := strings.TrimSpace(a.AdName)
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup || key == "" {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// CountAds summarises the ad book at now.
func (u *AdUseCase) CountAds(ctx context.Context, now time.Time) (domain.AdCounts, error) {
	ads, err := u.ads.all(ctx)
	if err != nil {
		return domain.AdCounts{}, err
	}
	startOfDay := u.rules.StartOfDay(now)
	var counts domain.AdCounts
	for _, a := range ads {
		if a.IsActive(now) {
			counts.Active++
		}
		if a.IsExpiringWithin(now, u.rules.ExpiringThreshold) {
			counts.Expiring++
		}
		if now.Sub(a.CreatedAt) < 24*time.Hour {
			counts.New++
		}
		if !a.CreatedAt.Before(startOfDay) {
			counts.Today++
		}
	}
	return counts, nil
}

func (u *AdUseCase) filter(ctx context.Context, keep func(domain.Ad) bool) ([]domain.Ad, error) {
	ads, err := u.ads.all(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(ads, func(a domain.Ad) bool { return !keep(a) }), nil
}
