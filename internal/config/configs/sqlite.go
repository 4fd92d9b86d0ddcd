package configs

// SQLite configures the embedded SQLite store.
type SQLite struct {
	// Path is the database file. It is created when missing.
	Path string `env:"PATH" envDefault:"pledge-data.db"`
	// RunMigrations applies the sqlite migrations on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}
