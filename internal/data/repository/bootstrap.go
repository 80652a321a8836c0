package repository

import (
	"context"
	"fmt"

	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/database"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

// DefaultSeedUsers are inserted when the users table is empty.
func DefaultSeedUsers() []entity.User {
	adminHouse := "-"
	residentHouse := "H-101"
	return []entity.User{
		{Name: "Admin User", HouseNumber: &adminHouse, Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
		{Name: "Resident One", HouseNumber: &residentHouse, Username: "user1", Password: "user123", Role: entity.RoleResident},
	}
}

// Bootstrap prepares the store before the server accepts requests: it
// ensures the schema exists and, when seed is enabled, seeds the default users.
func Bootstrap(ctx context.Context, db database.DBIface, seed utils.SeedConfig, log *zap.Logger) error {
	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}

	if !seed.Enabled {
		return nil
	}

	users := DefaultSeedUsers()
	if seed.HashPasswords {
		for i := range users {
			hashed, err := utils.HashPassword(users[i].Password)
			if err != nil {
				return fmt.Errorf("hash seed password for %s: %w", users[i].Username, err)
			}
			users[i].Password = hashed
		}
	}

	inserted, err := SeedUsers(ctx, db, users)
	if err != nil {
		return err
	}
	if inserted {
		log.Info("Inserted default admin and resident users", zap.Int("count", len(users)))
	}

	return nil
}

// SeedUsers inserts users in a single transaction when the users table is
// empty. It reports whether anything was inserted.
func SeedUsers(ctx context.Context, db database.DBIface, users []entity.User) (bool, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	query := `
		INSERT INTO users (name, house_number, username, password, role)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, u := range users {
		if _, err := tx.Exec(ctx, query, u.Name, u.HouseNumber, u.Username, u.Password, u.Role); err != nil {
			return false, fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}

	return true, nil
}
