package configs

import "strings"

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Store selects the persistence backend.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	// SeedDemo fills an empty store with demo clients and ads on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// DriverName normalises Driver. Unknown values are returned as-is so the
// caller can reject them.
func (c Store) DriverName() string {
	return strings.ToLower(strings.TrimSpace(c.Driver))
}
