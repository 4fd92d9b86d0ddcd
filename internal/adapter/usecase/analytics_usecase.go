package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/analytics"
	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// AnalyticsUseCase implements port.AnalyticsUseCase. It never writes; it
// folds snapshots with the pure functions of the analytics package using
// the configured ad price and calendar.
type AnalyticsUseCase struct {
	ads     port.AdUseCase
	clients port.ClientUseCase
	budget  port.BudgetUseCase
	clock   port.Clock
	rules   domain.Rules
}

var _ port.AnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase creates the aggregator.
func NewAnalyticsUseCase(ads port.AdUseCase, clients port.ClientUseCase, budget port.BudgetUseCase, clock port.Clock, rules domain.Rules) *AnalyticsUseCase {
	return &AnalyticsUseCase{ads: ads, clients: clients, budget: budget, clock: clock, rules: rules}
}

// Snapshot reads ads and clients once so that several reports can share a
// consistent view.
func (u *AnalyticsUseCase) Snapshot(ctx context.Context) (*port.Snapshot, error) {
	ads, err := u.ads.ListAllAds(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return &port.Snapshot{Ads: ads, Clients: clients}, nil
}

func (u *AnalyticsUseCase) snapshot(ctx context.Context, snap *port.Snapshot) (*port.Snapshot, error) {
	if snap != nil {
		return snap, nil
	}
	return u.Snapshot(ctx)
}

func (u *AnalyticsUseCase) TotalRevenue(ctx context.Context, snap *port.Snapshot) (decimal.Decimal, error) {
	snap, err := u.snapshot(ctx, snap)
	if err != nil {
		return decimal.Zero, err
	}
	return analytics.TotalRevenue(u.rules.AdPrice, snap.Ads), nil
}

func (u *AnalyticsUseCase) MonthlyRevenue(ctx context.Context, snap *port.Snapshot) ([]domain.MonthlyRevenue, error) {
	snap, err := u.snapshot(ctx, snap)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyRevenue(u.rules.AdPrice, snap.Ads), nil
}

func (u *AnalyticsUseCase) TopClients(ctx context.Context, limit int, snap *port.Snapshot) ([]domain.ClientRevenue, error) {
	snap, err := u.snapshot(ctx, snap)
	if err != nil {
		return nil, err
	}
	return analytics.TopClients(limit, u.rules.AdPrice, snap.Ads, snap.Clients), nil
}

func (u *AnalyticsUseCase) WorstClients(ctx context.Context, limit int, snap *port.Snapshot) ([]domain.InactiveClient, error) {
	snap, err := u.snapshot(ctx, snap)
	if err != nil {
		return nil, err
	}
	return analytics.WorstClients(limit, snap.Ads, snap.Clients, u.clock.Now()), nil
}

func (u *AnalyticsUseCase) RetentionStats(ctx context.Context, snap *port.Snapshot) (domain.RetentionStats, error) {
	snap, err := u.snapshot(ctx, snap)
	if err != nil {
		return domain.RetentionStats{}, err
	}
	return analytics.RetentionStats(snap.Ads, snap.Clients), nil
}

func (u *AnalyticsUseCase) DailyRevenue(ctx context.Context, days int, snap *port.Snapshot) ([]domain.DailyRevenue, error) {
	snap, err := u.snapshot(ctx, snap)
	if err != nil {
		return nil, err
	}
	return analytics.DailyRevenue(days, snap.Ads, u.rules.AdPrice, u.clock.Now(), u.rules.Location), nil
}

// Overview builds the dashboard summary. Like every report it only reads.
func (u *AnalyticsUseCase) Overview(ctx context.Context) (domain.Overview, error) {
	now := u.clock.Now()
	counts, err := u.ads.CountAds(ctx, now)
	if err != nil {
		return domain.Overview{}, err
	}
	revenue, err := u.TotalRevenue(ctx, nil)
	if err != nil {
		return domain.Overview{}, err
	}
	balance, err := u.budget.GetBalance(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	return domain.Overview{
		Counts:       counts,
		TotalRevenue: revenue,
		Balance:      balance,
		AdsRemaining: domain.AdsRemaining(balance, u.rules.AdCost),
	}, nil
}

// Alerts reports ads ending strictly within the expiring threshold, a
// balance below the cost of one ad, and clients created today.
func (u *AnalyticsUseCase) Alerts(ctx context.Context, now time.Time) (domain.Alerts, error) {
	expiring, err := u.ads.GetExpiringSoon(ctx, u.rules.ExpiringThreshold, now)
	if err != nil {
		return domain.Alerts{}, err
	}
	expiring = slices.DeleteFunc(expiring, func(a domain.Ad) bool {
		return !a.EndAt.After(now) || a.EndAt.Sub(now) >= u.rules.ExpiringThreshold
	})

	balance, err := u.budget.GetBalance(ctx)
	if err != nil {
		return domain.Alerts{}, err
	}

	clients, err := u.clients.ListClients(ctx)
	if err != nil {
		return domain.Alerts{}, err
	}
	startOfDay := u.rules.StartOfDay(now)
	clients = slices.DeleteFunc(clients, func(c domain.Client) bool { return c.CreatedAt.Before(startOfDay) })

	return domain.Alerts{
		ExpiringAds:     expiring,
		LowBalance:      balance.LessThan(u.rules.AdCost),
		NewClientsToday: clients,
	}, nil
}
