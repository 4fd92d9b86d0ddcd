package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"pledge-data/internal/adapter/memory"
	"pledge-data/internal/core/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type seqIDs struct{ n atomic.Int64 }

func (s *seqIDs) NewID() string { return fmt.Sprintf("id-%04d", s.n.Add(1)) }

var t0 = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type fixture struct {
	store     *memory.Store
	clock     *fakeClock
	ids       *seqIDs
	rules     domain.Rules
	ads       *AdUseCase
	clients   *ClientUseCase
	budget    *BudgetUseCase
	placement *PlacementUseCase
	analytics *AnalyticsUseCase
	backup    *BackupUseCase
}

func newFixture() *fixture {
	f := &fixture{
		store: memory.New(),
		clock: newFakeClock(t0),
		ids:   &seqIDs{},
		rules: domain.DefaultRules(),
	}
	logger := discardLogger()
	f.ads = NewAdUseCase(f.store, f.clock, f.ids, f.rules)
	f.clients = NewClientUseCase(f.store, f.ads, f.clock, f.ids, logger)
	f.budget = NewBudgetUseCase(f.store, f.clock, f.ids, f.rules, 0)
	f.placement = NewPlacementUseCase(f.ads, f.clients, f.budget, logger)
	f.analytics = NewAnalyticsUseCase(f.ads, f.clients, f.budget, f.clock, f.rules)
	f.backup = NewBackupUseCase(f.store, f.clock, logger)
	return f
}
