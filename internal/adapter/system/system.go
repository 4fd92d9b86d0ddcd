// Package system provides the wall clock and id generator used outside
// tests.
package system

import (
	"time"

	"github.com/google/uuid"
)

// Clock reads the wall clock in UTC.
type Clock struct{}

// Now returns the current instant in UTC.
func (Clock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator issues time-ordered UUIDv7 identifiers.
type UUIDGenerator struct{}

// NewID returns a fresh UUIDv7, falling back to a random UUID if the
// time-based generator fails.
func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
