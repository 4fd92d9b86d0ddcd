package port

import (
	"context"
	"errors"
	"slices"
)

var (
	// ErrVersionConflict is returned by CompareAndPut when the stored
	// version differs from the expected one.
	ErrVersionConflict = errors.New("version conflict")
	// ErrUnknownCollection is returned for a collection the store does not host.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Collection names hosted by every Store.
const (
	CollectionAds     = "ads"
	CollectionClients = "clients"
	CollectionBudget  = "budget"
	CollectionNotes   = "notes"
	CollectionRatings = "ratings"
)

// Index names.
const (
	IndexClientID = "clientId"
	IndexEndAt    = "endAt"
	IndexName     = "name"
)

// Collections lists every collection in import/export order.
var Collections = []string{
	CollectionAds,
	CollectionClients,
	CollectionBudget,
	CollectionNotes,
	CollectionRatings,
}

// Record is one stored document. Data holds the JSON encoding of the
// record, Indexes its secondary index values. Version is assigned by the
// store and grows by one on every write.
type Record struct {
	Key     string
	Data    []byte
	Indexes map[string]string
	Version int64
}

// Store is the persistent key/value store grouped into named collections.
// It is an outbound port; implementations must be safe for concurrent use.
type Store interface {
	// Put inserts or replaces rec by key and returns it with its new version.
	Put(ctx context.Context, collection string, rec Record) (Record, error)
	// Get returns the record under key. A missing key is reported through
	// the boolean, never as an error.
	Get(ctx context.Context, collection, key string) (Record, bool, error)
	// GetAll returns every record of the collection in no particular order.
	GetAll(ctx context.Context, collection string) ([]Record, error)
	// GetAllByIndex returns the records whose index equals *value, or every
	// record carrying the index when value is nil.
	GetAllByIndex(ctx context.Context, collection, index string, value *string) ([]Record, error)
	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, collection, key string) error
	// Clear removes every record of the collection.
	Clear(ctx context.Context, collection string) error
	// CompareAndPut writes rec only if the stored version equals
	// expectedVersion; zero means the key must not exist yet. It returns
	// ErrVersionConflict otherwise.
	CompareAndPut(ctx context.Context, collection string, rec Record, expectedVersion int64) (Record, error)
}

// IsKnownCollection reports whether name is one of Collections.
func IsKnownCollection(name string) bool {
	return slices.Contains(Collections, name)
}
