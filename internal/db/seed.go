package db

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"pledge-data/internal/core/port"
)

// Seeder fills an empty store with demo data through the use cases, so
// every invariant and the ledger hold exactly as for real traffic.
type Seeder struct {
	Clients   port.ClientUseCase
	Ads       port.AdUseCase
	Placement port.PlacementUseCase
	Budget    port.BudgetUseCase
	Logger    *slog.Logger
}

var demoClients = []port.AddClientInput{
	{Name: "Sara Benali", Phone: "+212 600 000 001"},
	{Name: "Atlas Motors", Email: "contact@atlas-motors.example"},
	{Name: "Karim Idrissi", Phone: "+212 600 000 002"},
	{Name: "Dar Zellige", Email: "hello@darzellige.example"},
	{Name: "sara  benali"},
}

var demoAdNames = []string{"Spring sale", "New arrivals", "Weekend offer", "Grand opening", "Clearance"}

// Seed adds demo clients, two packs and a spread of ads created over the
// last two weeks. It does nothing when any client already exists.
func (s Seeder) Seed(ctx context.Context, now time.Time) error {
	existing, err := s.Clients.ListClients(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.Logger.Info("store not empty, skipping demo seed", slog.Int("clients", len(existing)))
		return nil
	}

	r := rand.New(rand.NewPCG(uint64(now.UnixNano()), 42))

	for range 2 {
		if _, err = s.Budget.AddPack(ctx); err != nil {
			return err
		}
	}

	ads := 0
	for i, in := range demoClients {
		client, err := s.Clients.AddClient(ctx, in)
		if err != nil {
			return err
		}
		for j := range 1 + r.IntN(3) {
			created := now.Add(-time.Duration(r.IntN(14*24)) * time.Hour)
			_, err = s.Placement.PlaceAd(ctx, port.PlaceAdInput{CreateAdInput: port.CreateAdInput{
				ClientID:  client.ID,
				AdName:    demoAdNames[(i+j)%len(demoAdNames)],
				Link:      fmt.Sprintf("https://ads.example/%d/%d", i+1, j+1),
				CreatedAt: created,
			}})
			if err != nil {
				return err
			}
			ads++
		}
	}

	// Keep one ad alive past its first lifetime.
	expired, err := s.Ads.GetExpiredAds(ctx, now)
	if err != nil {
		return err
	}
	if len(expired) > 0 {
		if _, err = s.Ads.RenewAd(ctx, expired[0].ID, 14); err != nil {
			return err
		}
	}

	s.Logger.Info("demo data seeded", slog.Int("clients", len(demoClients)), slog.Int("ads", ads))
	return nil
}
