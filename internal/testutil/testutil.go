package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"waste-pickup/pkg/database"
	"waste-pickup/pkg/utils"

	"github.com/stretchr/testify/require"
)

// OpenInMemoryDB opens a private in-memory SQLite database with the schema
// applied. The database is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *database.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDB(utils.DatabaseConfig{
		Driver: database.DialectSQLite,
		Path:   "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err, "open test db")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.EnsureSchema(context.Background(), db), "ensure schema")
	return db
}

// Exec runs a raw statement against db, failing the test on error.
func Exec(t *testing.T, db database.DBIface, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(context.Background(), query, args...)
	require.NoError(t, err, "exec %s", query)
}

// Count returns COUNT(*) for table.
func Count(t *testing.T, db database.DBIface, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// FixedClock returns a clock that always reports ts.
func FixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
