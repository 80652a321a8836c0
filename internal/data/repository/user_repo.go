package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/database"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByCredentials(ctx context.Context, username, password string) (*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewUserRepository(db database.DBIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new user record and fills user.ID
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, house_number, username, password, role)
		VALUES (?, ?, ?, ?, ?)
		RETURNING user_id
	`

	err := ur.db.QueryRow(ctx, query,
		user.Name,
		user.HouseNumber,
		user.Username,
		user.Password,
		user.Role,
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT user_id, name, house_number, username, password, role
		FROM users
		WHERE username = ?
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Name,
		&user.HouseNumber,
		&user.Username,
		&user.Password,
		&user.Role,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

// FindByCredentials returns the user whose username and credential both
// match exactly, or nil when there is no such user.
func (ur *userRepository) FindByCredentials(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := ur.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, nil
	}

	return user, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	err := ur.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ur.log.Error("Database error counting users",
			zap.Error(err),
		)
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}
