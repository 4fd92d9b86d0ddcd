package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// BackupUseCase implements port.BackupUseCase. Notes and ratings belong to
// other tools; they are copied as opaque JSON and keyed by their clientId.
type BackupUseCase struct {
	store  port.Store
	clock  port.Clock
	logger *slog.Logger
}

var _ port.BackupUseCase = (*BackupUseCase)(nil)

// NewBackupUseCase creates the bulk import/export service.
func NewBackupUseCase(store port.Store, clock port.Clock, logger *slog.Logger) *BackupUseCase {
	return &BackupUseCase{store: store, clock: clock, logger: logger}
}

// Export dumps every collection.
func (u *BackupUseCase) Export(ctx context.Context) (domain.Backup, error) {
	doc := domain.Backup{CreatedAt: u.clock.Now(), Version: domain.BackupVersion}
	targets := map[string]*[]json.RawMessage{
		port.CollectionAds:     &doc.Ads,
		port.CollectionClients: &doc.Clients,
		port.CollectionBudget:  &doc.Budget,
		port.CollectionNotes:   &doc.Notes,
		port.CollectionRatings: &doc.Ratings,
	}
	for _, name := range port.Collections {
		recs, err := u.store.GetAll(ctx, name)
		if err != nil {
			return domain.Backup{}, fmt.Errorf("export %s: %w", name, err)
		}
		out := make([]json.RawMessage, 0, len(recs))
		for _, rec := range recs {
			out = append(out, json.RawMessage(rec.Data))
		}
		*targets[name] = out
	}
	return doc, nil
}

// Import replaces the content of every collection with doc. The whole
// document is checked before anything is cleared, so a malformed backup
// leaves the store untouched. A failure while writing is not rolled back.
func (u *BackupUseCase) Import(ctx context.Context, doc domain.Backup) error {
	batches, err := u.prepare(doc)
	if err != nil {
		return err
	}
	for _, name := range port.Collections {
		if err = u.store.Clear(ctx, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	for _, name := range port.Collections {
		for _, rec := range batches[name] {
			if _, err = u.store.Put(ctx, name, rec); err != nil {
				return fmt.Errorf("import %s %q: %w", name, rec.Key, err)
			}
		}
		u.logger.Info("imported collection", slog.String("collection", name), slog.Int("records", len(batches[name])))
	}
	return nil
}

// Reset clears every collection.
func (u *BackupUseCase) Reset(ctx context.Context) error {
	for _, name := range port.Collections {
		if err := u.store.Clear(ctx, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	u.logger.Warn("all collections cleared")
	return nil
}

func (u *BackupUseCase) prepare(doc domain.Backup) (map[string][]port.Record, error) {
	ads := adCollection(u.store)
	clients := clientCollection(u.store)
	budgets := budgetCollection(u.store)
	batches := make(map[string][]port.Record, len(port.Collections))

	for i, raw := range doc.Ads {
		ad, err := ads.decode(port.Record{Key: fmt.Sprint(i), Data: raw})
		if err != nil {
			return nil, domain.ValidationError{Field: fmt.Sprintf("ads[%d]", i), Message: err.Error()}
		}
		if strings.TrimSpace(ad.ID) == "" {
			return nil, domain.ValidationError{Field: fmt.Sprintf("ads[%d].id", i), Message: "is required"}
		}
		if err = ad.Validate(); err != nil {
			return nil, domain.ValidationError{Field: fmt.Sprintf("ads[%d]", i), Message: err.Error()}
		}
		batches[port.CollectionAds] = append(batches[port.CollectionAds],
			port.Record{Key: ad.ID, Data: raw, Indexes: ads.indexes(ad)})
	}
	for i, raw := range doc.Clients {
		c, err := clients.decode(port.Record{Key: fmt.Sprint(i), Data: raw})
		if err != nil {
			return nil, domain.ValidationError{Field: fmt.Sprintf("clients[%d]", i), Message: err.Error()}
		}
		if strings.TrimSpace(c.ID) == "" {
			return nil, domain.ValidationError{Field: fmt.Sprintf("clients[%d].id", i), Message: "is required"}
		}
		batches[port.CollectionClients] = append(batches[port.CollectionClients],
			port.Record{Key: c.ID, Data: raw, Indexes: clients.indexes(c)})
	}
	for i, raw := range doc.Budget {
		b, err := budgets.decode(port.Record{Key: fmt.Sprint(i), Data: raw})
		if err != nil {
			return nil, domain.ValidationError{Field: fmt.Sprintf("budget[%d]", i), Message: err.Error()}
		}
		if err = b.Validate(); err != nil {
			return nil, domain.ValidationError{Field: fmt.Sprintf("budget[%d]", i), Message: err.Error()}
		}
		key := b.ID
		if key == "" {
			key = domain.BudgetKey
		}
		batches[port.CollectionBudget] = append(batches[port.CollectionBudget], port.Record{Key: key, Data: raw})
	}
	for _, name := range []string{port.CollectionNotes, port.CollectionRatings} {
		src := doc.Notes
		if name == port.CollectionRatings {
			src = doc.Ratings
		}
		for i, raw := range src {
			var owned struct {
				ClientID string `json:"clientId"`
			}
			if err := json.Unmarshal(raw, &owned); err != nil {
				return nil, domain.ValidationError{Field: fmt.Sprintf("%s[%d]", name, i), Message: err.Error()}
			}
			if strings.TrimSpace(owned.ClientID) == "" {
				return nil, domain.ValidationError{Field: fmt.Sprintf("%s[%d].clientId", name, i), Message: "is required"}
			}
			batches[name] = append(batches[name], port.Record{Key: owned.ClientID, Data: raw})
		}
	}
	return batches, nil
}
