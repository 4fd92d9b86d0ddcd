package domain

import (
	"strings"
	"time"
)

// UnknownClientName is shown for ads whose client reference no longer
// resolves.
const UnknownClientName = "Unknown"

// Client represents a customer. Name is always stored normalized; Phone and
// Email are empty when absent.
type Client struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastActiveAt *time.Time `json:"lastActiveAt,omitempty"`
}

// LastSeen returns LastActiveAt, falling back to CreatedAt.
func (c Client) LastSeen() time.Time {
	if c.LastActiveAt != nil {
		return *c.LastActiveAt
	}
	return c.CreatedAt
}

// NormalizeName lower-cases name, trims it and collapses internal runs of
// whitespace to a single space. The result is the duplicate-merge key.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// SanitizeOptional trims value; whitespace-only becomes empty (absent).
func SanitizeOptional(value string) string {
	return strings.TrimSpace(value)
}

// ClientRef is a loose reference from an Ad to a Client. It is not enforced
// on write and is resolved through a ClientDirectory on read.
type ClientRef string

// Validate rejects empty references.
func (r ClientRef) Validate() error {
	if strings.TrimSpace(string(r)) == "" {
		return ValidationError{Field: "clientId", Message: "is required"}
	}
	return nil
}

func (r ClientRef) String() string { return string(r) }

// ClientDirectory resolves client references against a snapshot of clients.
type ClientDirectory struct {
	byID map[string]Client
}

// NewClientDirectory indexes clients by id.
func NewClientDirectory(clients []Client) ClientDirectory {
	byID := make(map[string]Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	return ClientDirectory{byID: byID}
}

// Resolve returns the referenced client and whether it exists.
func (d ClientDirectory) Resolve(ref ClientRef) (Client, bool) {
	c, ok := d.byID[string(ref)]
	return c, ok
}

// NameOf returns the referenced client's name or UnknownClientName for a
// dangling reference.
func (d ClientDirectory) NameOf(ref ClientRef) string {
	if c, ok := d.Resolve(ref); ok {
		return c.Name
	}
	return UnknownClientName
}
