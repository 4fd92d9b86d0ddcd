package db

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pledge-data/internal/adapter/memory"
	"pledge-data/internal/adapter/system"
	"pledge-data/internal/adapter/usecase"
	"pledge-data/internal/core/domain"
)

func TestSeedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	clock := system.Clock{}
	ids := system.UUIDGenerator{}
	rules := domain.DefaultRules()

	ads := usecase.NewAdUseCase(store, clock, ids, rules)
	clients := usecase.NewClientUseCase(store, ads, clock, ids, logger)
	budget := usecase.NewBudgetUseCase(store, clock, ids, rules, 0)
	seeder := Seeder{
		Clients:   clients,
		Ads:       ads,
		Placement: usecase.NewPlacementUseCase(ads, clients, budget, logger),
		Budget:    budget,
		Logger:    logger,
	}

	require.NoError(t, seeder.Seed(ctx, time.Now().UTC()))
	seeded, err := ads.ListAllAds(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	b, err := budget.GetOrCreateBudget(ctx)
	require.NoError(t, err)
	assert.Len(t, b.Purchases, 2)
	spent := rules.AdCost.Mul(decimal.NewFromInt(int64(len(seeded))))
	assert.True(t, b.Spent.Equal(spent), "spent %s, want %s", b.Spent, spent)

	require.NoError(t, seeder.Seed(ctx, time.Now().UTC()))
	again, err := ads.ListAllAds(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(seeded))
}
