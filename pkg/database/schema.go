package database

import (
	"context"
	"fmt"
)

// EnsureSchema creates the users, pickup_requests and waste_logs tables when
// they are missing. Safe to run on every boot.
func EnsureSchema(ctx context.Context, db DBIface) error {
	for _, stmt := range db.Dialect().Schema() {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema (%s): %w", db.Dialect().Name(), err)
		}
	}
	return nil
}
