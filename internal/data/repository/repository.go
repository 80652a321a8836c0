package repository

import (
	"waste-pickup/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Pickup   PickupRepository
	WasteLog WasteLogRepository
}

func NewRepository(db database.DBIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Pickup:   NewPickupRepository(db, log),
		WasteLog: NewWasteLogRepository(db, log),
	}
}
