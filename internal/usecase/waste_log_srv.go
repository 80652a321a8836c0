package usecase

import (
	"context"

	"waste-pickup/internal/data/repository"
	"waste-pickup/internal/dto/response"

	"go.uber.org/zap"
)

type WasteLogService interface {
	ListAll(ctx context.Context) ([]response.WasteLogResponse, error)
}

type wasteLogService struct {
	wasteLogRepo repository.WasteLogRepository
	log          *zap.Logger
}

func NewWasteLogService(wasteLogRepo repository.WasteLogRepository, log *zap.Logger) WasteLogService {
	return &wasteLogService{
		wasteLogRepo: wasteLogRepo,
		log:          log,
	}
}

func (s *wasteLogService) ListAll(ctx context.Context) ([]response.WasteLogResponse, error) {
	items, err := s.wasteLogRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Waste logs listed", zap.Int("count", len(items)))

	return response.WasteLogsToResponse(items), nil
}
