package usecase

import (
	"context"
	"log/slog"
	"strings"

	"pledge-data/internal/core/port"
)

// PlacementUseCase implements port.PlacementUseCase: an ad is only kept if
// the ledger was charged for it.
type PlacementUseCase struct {
	ads     port.AdUseCase
	clients port.ClientUseCase
	budget  port.BudgetUseCase
	logger  *slog.Logger
}

var _ port.PlacementUseCase = (*PlacementUseCase)(nil)

// NewPlacementUseCase wires the three components an ad placement touches.
func NewPlacementUseCase(ads port.AdUseCase, clients port.ClientUseCase, budget port.BudgetUseCase, logger *slog.Logger) *PlacementUseCase {
	return &PlacementUseCase{ads: ads, clients: clients, budget: budget, logger: logger}
}

// PlaceAd creates the client when only NewClientName is given, then the ad,
// then charges the budget. A failed charge deletes the ad again. A client
// created inline is kept either way.
func (u *PlacementUseCase) PlaceAd(ctx context.Context, in port.PlaceAdInput) (port.PlaceAdResult, error) {
	if strings.TrimSpace(in.ClientID) == "" && strings.TrimSpace(in.NewClientName) != "" {
		client, err := u.clients.AddClient(ctx, port.AddClientInput{Name: in.NewClientName})
		if err != nil {
			return port.PlaceAdResult{}, err
		}
		in.ClientID = client.ID
	}

	ad, err := u.ads.CreateAd(ctx, in.CreateAdInput)
	if err != nil {
		return port.PlaceAdResult{}, err
	}

	budget, err := u.budget.DeductForAd(ctx)
	if err != nil {
		// The caller's context may be what failed the charge.
		if delErr := u.ads.DeleteAd(context.WithoutCancel(ctx), ad.ID); delErr != nil {
			u.logger.Error("compensate ad creation",
				slog.String("ad_id", ad.ID),
				slog.Any("error", delErr))
		} else {
			u.logger.Warn("ad removed after failed budget deduction",
				slog.String("ad_id", ad.ID),
				slog.Any("error", err))
		}
		return port.PlaceAdResult{}, err
	}
	return port.PlaceAdResult{Ad: ad, Budget: budget}, nil
}
