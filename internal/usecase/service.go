package usecase

import (
	"time"

	"waste-pickup/internal/data/repository"

	"go.uber.org/zap"
)

// Clock returns the current time. Services take one so tests can pin timestamps.
type Clock func() time.Time

type Service struct {
	Auth     AuthService
	Pickup   PickupService
	WasteLog WasteLogService
}

func NewService(repo *repository.Repository, clock Clock, log *zap.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		Auth:     NewAuthService(repo.User, log),
		Pickup:   NewPickupService(repo.Pickup, clock, log),
		WasteLog: NewWasteLogService(repo.WasteLog, log),
	}
}
