package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/domain"
)

// Snapshot is a consistent read of ads and clients that reports fold over.
type Snapshot struct {
	Ads     []domain.Ad
	Clients []domain.Client
}

// AnalyticsUseCase defines the read-only Analytics Aggregator. Every
// method takes a snapshot; a nil snapshot makes it fetch a fresh one.
type AnalyticsUseCase interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	TotalRevenue(ctx context.Context, snap *Snapshot) (decimal.Decimal, error)
	MonthlyRevenue(ctx context.Context, snap *Snapshot) ([]domain.MonthlyRevenue, error)
	TopClients(ctx context.Context, limit int, snap *Snapshot) ([]domain.ClientRevenue, error)
	WorstClients(ctx context.Context, limit int, snap *Snapshot) ([]domain.InactiveClient, error)
	RetentionStats(ctx context.Context, snap *Snapshot) (domain.RetentionStats, error)
	DailyRevenue(ctx context.Context, days int, snap *Snapshot) ([]domain.DailyRevenue, error)
	Overview(ctx context.Context) (domain.Overview, error)
	Alerts(ctx context.Context, now time.Time) (domain.Alerts, error)
}
