package repository

import (
	"context"
	"fmt"

	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/database"

	"go.uber.org/zap"
)

type PickupRepository interface {
	Create(ctx context.Context, pr *entity.PickupRequest) error
	FindByUser(ctx context.Context, userID int64) ([]*entity.PickupRequest, error)
	FindAllWithResident(ctx context.Context) ([]*entity.PickupWithResident, error)
	UpdateStatus(ctx context.Context, id int64, status entity.PickupStatus) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type pickupRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewPickupRepository(db database.DBIface, log *zap.Logger) PickupRepository {
	return &pickupRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a pickup request and fills pr.ID
func (r *pickupRepository) Create(ctx context.Context, pr *entity.PickupRequest) error {
	query := `
		INSERT INTO pickup_requests (user_id, timestamp, status)
		VALUES (?, ?, ?)
		RETURNING request_id
	`

	err := r.db.QueryRow(ctx, query, pr.UserID, pr.Timestamp, pr.Status).Scan(&pr.ID)
	if err != nil {
		r.log.Error("Failed to create pickup request",
			zap.Error(err),
			zap.Int64("user_id", pr.UserID),
		)
		return fmt.Errorf("create pickup request for user %d: %w", pr.UserID, err)
	}

	return nil
}

// FindByUser returns the user's requests, newest first
func (r *pickupRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.PickupRequest, error) {
	query := `
		SELECT request_id, user_id, timestamp, status
		FROM pickup_requests
		WHERE user_id = ?
		ORDER BY request_id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get pickup requests by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find pickup requests for user %d: %w", userID, err)
	}
	defer rows.Close()

	var requests []*entity.PickupRequest
	for rows.Next() {
		var pr entity.PickupRequest
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Timestamp, &pr.Status); err != nil {
			r.log.Error("Failed to scan pickup request row", zap.Error(err))
			return nil, fmt.Errorf("scan pickup request row: %w", err)
		}
		requests = append(requests, &pr)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate pickup request rows: %w", err)
	}

	return requests, nil
}

// FindAllWithResident returns every request joined with its requester, newest first.
// Requests whose user row is missing are not returned.
func (r *pickupRepository) FindAllWithResident(ctx context.Context) ([]*entity.PickupWithResident, error) {
	query := `
		SELECT pr.request_id, pr.user_id, pr.timestamp, pr.status,
		       u.name, u.house_number
		FROM pickup_requests pr
		JOIN users u ON pr.user_id = u.user_id
		ORDER BY pr.request_id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all pickup requests", zap.Error(err))
		return nil, fmt.Errorf("find all pickup requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.PickupWithResident
	for rows.Next() {
		var pr entity.PickupWithResident
		err := rows.Scan(
			&pr.ID,
			&pr.UserID,
			&pr.Timestamp,
			&pr.Status,
			&pr.ResidentName,
			&pr.HouseNumber,
		)
		if err != nil {
			r.log.Error("Failed to scan pickup request row", zap.Error(err))
			return nil, fmt.Errorf("scan pickup request row: %w", err)
		}
		requests = append(requests, &pr)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate pickup request rows: %w", err)
	}

	return requests, nil
}

// UpdateStatus sets the status column and reports how many rows changed
func (r *pickupRepository) UpdateStatus(ctx context.Context, id int64, status entity.PickupStatus) (int64, error) {
	query := `UPDATE pickup_requests SET status = ? WHERE request_id = ?`

	result, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		r.log.Error("Failed to update pickup status",
			zap.Error(err),
			zap.Int64("request_id", id),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("update pickup request %d status: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for pickup request %d: %w", id, err)
	}

	return affected, nil
}

func (r *pickupRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM pickup_requests`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting pickup requests", zap.Error(err))
		return 0, fmt.Errorf("count pickup requests: %w", err)
	}

	return count, nil
}
