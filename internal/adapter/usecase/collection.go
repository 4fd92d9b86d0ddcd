package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

// indexTimeLayout is fixed width so index values sort chronologically.
const indexTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// collection maps one typed record kind onto a store collection.
type collection[T any] struct {
	store   port.Store
	name    string
	key     func(T) string
	indexes func(T) map[string]string
}

func adCollection(store port.Store) collection[domain.Ad] {
	return collection[domain.Ad]{
		store: store,
		name:  port.CollectionAds,
		key:   func(a domain.Ad) string { return a.ID },
		indexes: func(a domain.Ad) map[string]string {
			return map[string]string{
				port.IndexClientID: a.ClientID.String(),
				port.IndexEndAt:    a.EndAt.UTC().Format(indexTimeLayout),
			}
		},
	}
}

func clientCollection(store port.Store) collection[domain.Client] {
	return collection[domain.Client]{
		store: store,
		name:  port.CollectionClients,
		key:   func(c domain.Client) string { return c.ID },
		indexes: func(c domain.Client) map[string]string {
			return map[string]string{port.IndexName: c.Name}
		},
	}
}

func budgetCollection(store port.Store) collection[domain.Budget] {
	return collection[domain.Budget]{
		store: store,
		name:  port.CollectionBudget,
		key:   func(domain.Budget) string { return domain.BudgetKey },
	}
}

func (c collection[T]) encode(v T) (port.Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return port.Record{}, fmt.Errorf("encode %s record: %w", c.name, err)
	}
	rec := port.Record{Key: c.key(v), Data: data}
	if c.indexes != nil {
		rec.Indexes = c.indexes(v)
	}
	return rec, nil
}

func (c collection[T]) decode(rec port.Record) (T, error) {
	var v T
	if err := json.Unmarshal(rec.Data, &v); err != nil {
		return v, fmt.Errorf("decode %s record %q: %w", c.name, rec.Key, err)
	}
	return v, nil
}

func (c collection[T]) decodeAll(recs []port.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := c.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c collection[T]) put(ctx context.Context, v T) error {
	rec, err := c.encode(v)
	if err != nil {
		return err
	}
	if _, err = c.store.Put(ctx, c.name, rec); err != nil {
		return fmt.Errorf("put %s %q: %w", c.name, rec.Key, err)
	}
	return nil
}

// compareAndPut writes v if the stored version is still expected and
// returns the new version.
func (c collection[T]) compareAndPut(ctx context.Context, v T, expected int64) (int64, error) {
	rec, err := c.encode(v)
	if err != nil {
		return 0, err
	}
	stored, err := c.store.CompareAndPut(ctx, c.name, rec, expected)
	if err != nil {
		return 0, err
	}
	return stored.Version, nil
}

// get returns the decoded record, its version and whether it exists.
func (c collection[T]) get(ctx context.Context, key string) (T, int64, bool, error) {
	var zero T
	rec, ok, err := c.store.Get(ctx, c.name, key)
	if err != nil {
		return zero, 0, false, fmt.Errorf("get %s %q: %w", c.name, key, err)
	}
	if !ok {
		return zero, 0, false, nil
	}
	v, err := c.decode(rec)
	if err != nil {
		return zero, 0, false, err
	}
	return v, rec.Version, true, nil
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	recs, err := c.store.GetAll(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	return c.decodeAll(recs)
}

func (c collection[T]) byIndex(ctx context.Context, index, value string) ([]T, error) {
	recs, err := c.store.GetAllByIndex(ctx, c.name, index, &value)
	if err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", c.name, index, err)
	}
	return c.decodeAll(recs)
}

func (c collection[T]) delete(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, c.name, key); err != nil {
		return fmt.Errorf("delete %s %q: %w", c.name, key, err)
	}
	return nil
}

func newest[T any](createdAt func(T) time.Time) func(a, b T) int {
	return func(a, b T) int { return createdAt(b).Compare(createdAt(a)) }
}
