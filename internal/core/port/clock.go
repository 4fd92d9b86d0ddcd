package port

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies unique record identifiers.
type IDGenerator interface {
	NewID() string
}
