package port

import (
	"context"

	"pledge-data/internal/core/domain"
)

// ClientUseCase defines the Client Registry.
type ClientUseCase interface {
	// AddClient normalizes the name and persists a new client.
	AddClient(ctx context.Context, in AddClientInput) (domain.Client, error)
	// UpdateClient re-normalizes and re-sanitizes an existing client.
	UpdateClient(ctx context.Context, client domain.Client) (domain.Client, error)
	// GetClient returns one client or a NotFoundError.
	GetClient(ctx context.Context, clientID string) (domain.Client, error)
	// ListClients returns every client sorted by name.
	ListClients(ctx context.Context) ([]domain.Client, error)
	// SearchClients matches query case-insensitively against name, phone
	// and email. An empty query lists everything.
	SearchClients(ctx context.Context, query string) ([]domain.Client, error)
	// TouchClientActivity stamps LastActiveAt with the current time.
	TouchClientActivity(ctx context.Context, clientID string) (domain.Client, error)
	// DeleteClient removes a client and every ad referencing it. It
	// returns the number of ads removed.
	DeleteClient(ctx context.Context, clientID string) (int, error)
	// MergeDuplicates folds clients sharing a normalized name into the
	// earliest created one and returns how many records were removed.
	MergeDuplicates(ctx context.Context) (int, error)
}

// AddClientInput carries the fields of a new client.
type AddClientInput struct {
	Name  string
	Phone string
	Email string
}
