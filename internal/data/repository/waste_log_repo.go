package repository

import (
	"context"
	"fmt"

	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/database"

	"go.uber.org/zap"
)

type WasteLogRepository interface {
	Create(ctx context.Context, wl *entity.WasteLog) error
	FindAll(ctx context.Context) ([]*entity.WasteLogDetail, error)
}

type wasteLogRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewWasteLogRepository(db database.DBIface, log *zap.Logger) WasteLogRepository {
	return &wasteLogRepository{
		db:  db,
		log: log,
	}
}

// Create records a collection event. There is no HTTP route for it; logs
// are written out-of-band.
func (r *wasteLogRepository) Create(ctx context.Context, wl *entity.WasteLog) error {
	query := `
		INSERT INTO waste_logs (request_id, waste_type, timestamp)
		VALUES (?, ?, ?)
		RETURNING log_id
	`

	err := r.db.QueryRow(ctx, query, wl.RequestID, wl.WasteType, wl.Timestamp).Scan(&wl.ID)
	if err != nil {
		r.log.Error("Failed to create waste log", zap.Error(err))
		return fmt.Errorf("create waste log: %w", err)
	}

	return nil
}

// FindAll returns every log, newest first, left-joined to its request and
// resident so orphaned logs are kept with nil resident fields.
func (r *wasteLogRepository) FindAll(ctx context.Context) ([]*entity.WasteLogDetail, error) {
	query := `
		SELECT wl.log_id, wl.request_id, wl.waste_type, wl.timestamp,
		       pr.request_id, u.name, u.house_number
		FROM waste_logs wl
		LEFT JOIN pickup_requests pr ON wl.request_id = pr.request_id
		LEFT JOIN users u ON pr.user_id = u.user_id
		ORDER BY wl.log_id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get waste logs", zap.Error(err))
		return nil, fmt.Errorf("find all waste logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.WasteLogDetail
	for rows.Next() {
		var wl entity.WasteLogDetail
		err := rows.Scan(
			&wl.ID,
			&wl.RequestID,
			&wl.WasteType,
			&wl.Timestamp,
			&wl.PickupRequestID,
			&wl.ResidentName,
			&wl.HouseNumber,
		)
		if err != nil {
			r.log.Error("Failed to scan waste log row", zap.Error(err))
			return nil, fmt.Errorf("scan waste log row: %w", err)
		}
		logs = append(logs, &wl)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate waste log rows: %w", err)
	}

	return logs, nil
}
