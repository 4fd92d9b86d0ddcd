package port

import (
	"context"

	"pledge-data/internal/core/domain"
)

// BackupUseCase moves whole collections in and out of the store.
type BackupUseCase interface {
	// Export dumps every collection.
	Export(ctx context.Context) (domain.Backup, error)
	// Import validates doc, clears every collection and writes doc back.
	Import(ctx context.Context, doc domain.Backup) error
	// Reset clears every collection.
	Reset(ctx context.Context) error
}
