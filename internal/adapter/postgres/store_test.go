package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"pledge-data/internal/adapter/storetest"
	"pledge-data/internal/config/configs"
	"pledge-data/internal/core/port"
	"pledge-data/internal/db"
)

// The suite needs a disposable database: PLEDGE_TEST_PSQL_ADDRESS is
// migrated and every collection is cleared before each subtest.
func TestStoreContract(t *testing.T) {
	addr := os.Getenv("PLEDGE_TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("PLEDGE_TEST_PSQL_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.MigratePostgres(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storetest.Run(t, func(t *testing.T) port.Store {
		s := NewStore(pool)
		for _, name := range port.Collections {
			require.NoError(t, s.Clear(ctx, name))
		}
		return s
	})
}
