package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// ClientUseCase implements port.ClientUseCase. It owns client records and
// rewrites ad client references only while merging duplicates.
type ClientUseCase struct {
	clients collection[domain.Client]
	ads     collection[domain.Ad]
	adUC    port.AdUseCase
	clock   port.Clock
	ids     port.IDGenerator
	logger  *slog.Logger
}

var _ port.ClientUseCase = (*ClientUseCase)(nil)

// NewClientUseCase creates the client registry. adUC is used to cascade
// client deletion to ads.
func NewClientUseCase(store port.Store, adUC port.AdUseCase, clock port.Clock, ids port.IDGenerator, logger *slog.Logger) *ClientUseCase {
	return &ClientUseCase{
		clients: clientCollection(store),
		ads:     adCollection(store),
		adUC:    adUC,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// AddClient persists a new client under its normalized name. Duplicate
// names are accepted; MergeDuplicates resolves them later.
func (u *ClientUseCase) AddClient(ctx context.Context, in port.AddClientInput) (domain.Client, error) {
	name := domain.NormalizeName(in.Name)
	if name == "" {
		return domain.Client{}, domain.ValidationError{Field: "name", Message: "is required"}
	}
	client := domain.Client{
		ID:        u.ids.NewID(),
		Name:      name,
		Phone:     domain.SanitizeOptional(in.Phone),
		Email:     domain.SanitizeOptional(in.Email),
		CreatedAt: u.clock.Now(),
	}
	if err := u.clients.put(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

// UpdateClient replaces the editable fields of an existing client. An empty
// name keeps the stored one; empty phone or email clears it.
func (u *ClientUseCase) UpdateClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	if strings.TrimSpace(client.ID) == "" {
		return domain.Client{}, domain.ValidationError{Field: "id", Message: "is required"}
	}
	stored, err := u.GetClient(ctx, client.ID)
	if err != nil {
		return domain.Client{}, err
	}
	if name := domain.NormalizeName(client.Name); name != "" {
		stored.Name = name
	}
	stored.Phone = domain.SanitizeOptional(client.Phone)
	stored.Email = domain.SanitizeOptional(client.Email)
	if client.LastActiveAt != nil {
		stored.LastActiveAt = client.LastActiveAt
	}
	if err = u.clients.put(ctx, stored); err != nil {
		return domain.Client{}, err
	}
	return stored, nil
}

// GetClient returns the client with clientID.
func (u *ClientUseCase) GetClient(ctx context.Context, clientID string) (domain.Client, error) {
	client, _, ok, err := u.clients.get(ctx, clientID)
	if err != nil {
		return domain.Client{}, err
	}
	if !ok {
		return domain.Client{}, domain.NotFoundError{Kind: "client", ID: clientID}
	}
	return client, nil
}

// ListClients returns every client sorted by name.
func (u *ClientUseCase) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := u.clients.all(ctx)
	if err != nil {
		return nil, err
	}
	sortByName(clients)
	return clients, nil
}

// SearchClients returns clients whose name, phone or email contains query,
// ignoring case, sorted by name.
func (u *ClientUseCase) SearchClients(ctx context.Context, query string) ([]domain.Client, error) {
	clients, err := u.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients, nil
	}
	return slices.DeleteFunc(clients, func(c domain.Client) bool {
		for _, v := range []string{c.Name, c.Phone, c.Email} {
			if v != "" && strings.Contains(strings.ToLower(v), q) {
				return false
			}
		}
		return true
	}), nil
}

// TouchClientActivity records that the client was active now.
func (u *ClientUseCase) TouchClientActivity(ctx context.Context, clientID string) (domain.Client, error) {
	client, err := u.GetClient(ctx, clientID)
	if err != nil {
		return domain.Client{}, err
	}
	now := u.clock.Now()
	client.LastActiveAt = &now
	if err = u.clients.put(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

// DeleteClient removes the client's ads first, then the client. Deleting a
// missing client succeeds.
func (u *ClientUseCase) DeleteClient(ctx context.Context, clientID string) (int, error) {
	removed, err := u.adUC.DeleteAdsByClient(ctx, clientID)
	if err != nil {
		return removed, err
	}
	if err = u.clients.delete(ctx, clientID); err != nil {
		return removed, err
	}
	return removed, nil
}

// MergeDuplicates groups clients by normalized name. In every group the
// earliest created client survives; each later one has all its ads moved
// to the survivor before it is deleted. Writes are not rolled back: on
// error the count of records already removed is returned with it.
func (u *ClientUseCase) MergeDuplicates(ctx context.Context) (int, error) {
	clients, err := u.clients.all(ctx)
	if err != nil {
		return 0, err
	}
	groups := make(map[string][]domain.Client)
	for _, c := range clients {
		key := domain.NormalizeName(c.Name)
		groups[key] = append(groups[key], c)
	}

	merged := 0
	for _, key := range slices.Sorted(maps.Keys(groups)) {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		slices.SortStableFunc(group, func(a, b domain.Client) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		primary := group[0]
		for _, dup := range group[1:] {
			moved, err := u.absorb(ctx, primary, dup)
			if err != nil {
				u.logger.Error("merge duplicate client",
					slog.String("primary", primary.ID),
					slog.String("duplicate", dup.ID),
					slog.Int("moved_ads", moved),
					slog.Any("error", err))
				return merged, err
			}
			merged++
			u.logger.Info("merged duplicate client",
				slog.String("name", key),
				slog.String("primary", primary.ID),
				slog.String("duplicate", dup.ID),
				slog.Int("moved_ads", moved))
		}
	}
	return merged, nil
}

// absorb moves every ad of dup to primary and then deletes dup.
func (u *ClientUseCase) absorb(ctx context.Context, primary, dup domain.Client) (int, error) {
	ads, err := u.ads.byIndex(ctx, port.IndexClientID, dup.ID)
	if err != nil {
		return 0, err
	}
	for i, ad := range ads {
		ad.ClientID = domain.ClientRef(primary.ID)
		if err = u.ads.put(ctx, ad); err != nil {
			return i, err
		}
	}
	return len(ads), u.clients.delete(ctx, dup.ID)
}

// sortByName orders clients alphabetically, breaking ties by creation.
func sortByName(clients []domain.Client) {
	slices.SortStableFunc(clients, func(a, b domain.Client) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
