// Package memory implements port.Store in process memory. It backs tests
// and the default single-user deployment.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"pledge-data/internal/core/port"
)

// Store implements port.Store with one map per collection.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]port.Record
}

var _ port.Store = (*Store)(nil)

// New returns an empty store hosting every known collection.
func New() *Store {
	s := &Store{collections: make(map[string]map[string]port.Record, len(port.Collections))}
	for _, name := range port.Collections {
		s.collections[name] = make(map[string]port.Record)
	}
	return s
}

func (s *Store) collection(name string) (map[string]port.Record, error) {
	c, ok := s.collections[name]
	if !ok {
		return nil, port.ErrUnknownCollection
	}
	return c, nil
}

// Put inserts or replaces rec and bumps its version.
func (s *Store) Put(ctx context.Context, collection string, rec port.Record) (port.Record, error) {
	if err := ctx.Err(); err != nil {
		return port.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.collection(collection)
	if err != nil {
		return port.Record{}, err
	}
	rec = clone(rec)
	rec.Version = c[rec.Key].Version + 1
	c[rec.Key] = rec
	return clone(rec), nil
}

// CompareAndPut writes rec only when the stored version matches.
func (s *Store) CompareAndPut(ctx context.Context, collection string, rec port.Record, expectedVersion int64) (port.Record, error) {
	if err := ctx.Err(); err != nil {
		return port.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.collection(collection)
	if err != nil {
		return port.Record{}, err
	}
	if c[rec.Key].Version != expectedVersion {
		return port.Record{}, port.ErrVersionConflict
	}
	rec = clone(rec)
	rec.Version = expectedVersion + 1
	c[rec.Key] = rec
	return clone(rec), nil
}

// Get returns the record under key.
func (s *Store) Get(ctx context.Context, collection, key string) (port.Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return port.Record{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.collection(collection)
	if err != nil {
		return port.Record{}, false, err
	}
	rec, ok := c[key]
	if !ok {
		return port.Record{}, false, nil
	}
	return clone(rec), true, nil
}

// GetAll returns every record of collection.
func (s *Store) GetAll(ctx context.Context, collection string) ([]port.Record, error) {
	return s.scan(ctx, collection, func(port.Record) bool { return true })
}

// GetAllByIndex returns records whose index matches value, or all records
// carrying the index when value is nil.
func (s *Store) GetAllByIndex(ctx context.Context, collection, index string, value *string) ([]port.Record, error) {
	return s.scan(ctx, collection, func(rec port.Record) bool {
		v, ok := rec.Indexes[index]
		if !ok {
			return false
		}
		return value == nil || v == *value
	})
}

func (s *Store) scan(ctx context.Context, collection string, keep func(port.Record) bool) ([]port.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	out := make([]port.Record, 0, len(c))
	for _, key := range slices.Sorted(maps.Keys(c)) {
		if rec := c[key]; keep(rec) {
			out = append(out, clone(rec))
		}
	}
	return out, nil
}

// Delete removes key; a missing key is ignored.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.collection(collection)
	if err != nil {
		return err
	}
	delete(c, key)
	return nil
}

// Clear empties collection.
func (s *Store) Clear(ctx context.Context, collection string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.collection(collection); err != nil {
		return err
	}
	s.collections[collection] = make(map[string]port.Record)
	return nil
}

// clone copies the mutable parts of rec so callers never alias stored data.
func clone(rec port.Record) port.Record {
	rec.Data = slices.Clone(rec.Data)
	rec.Indexes = maps.Clone(rec.Indexes)
	return rec
}
