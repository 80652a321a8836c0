package usecase

import (
	"context"
	"fmt"

	"waste-pickup/internal/data/entity"
	"waste-pickup/internal/data/repository"
	"waste-pickup/internal/dto/request"
	"waste-pickup/internal/dto/response"

	"go.uber.org/zap"
)

type PickupService interface {
	Create(ctx context.Context, req *request.CreatePickupRequest) (*response.PickupCreatedResponse, error)
	ListForUser(ctx context.Context, userID int64) ([]response.PickupResponse, error)
	ListAll(ctx context.Context) ([]response.PickupWithResidentResponse, error)
	UpdateStatus(ctx context.Context, req *request.UpdateStatusRequest) error
}

type pickupService struct {
	pickupRepo repository.PickupRepository
	now        Clock
	log        *zap.Logger
}

func NewPickupService(pickupRepo repository.PickupRepository, clock Clock, log *zap.Logger) PickupService {
	return &pickupService{
		pickupRepo: pickupRepo,
		now:        clock,
		log:        log,
	}
}

// Create stores a PENDING request stamped with the server's local time.
func (s *pickupService) Create(ctx context.Context, req *request.CreatePickupRequest) (*response.PickupCreatedResponse, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	pr := &entity.PickupRequest{
		UserID:    int64(req.UserID),
		Timestamp: entity.FormatTimestamp(s.now()),
		Status:    entity.StatusPending,
	}

	if err := s.pickupRepo.Create(ctx, pr); err != nil {
		return nil, err
	}

	s.log.Info("Pickup request created",
		zap.Int64("request_id", pr.ID),
		zap.Int64("user_id", pr.UserID),
		zap.String("timestamp", pr.Timestamp))

	resp := response.PickupCreatedToResponse(pr)
	return &resp, nil
}

func (s *pickupService) ListForUser(ctx context.Context, userID int64) ([]response.PickupResponse, error) {
	items, err := s.pickupRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return response.PickupsToResponse(items), nil
}

func (s *pickupService) ListAll(ctx context.Context) ([]response.PickupWithResidentResponse, error) {
	items, err := s.pickupRepo.FindAllWithResident(ctx)
	if err != nil {
		return nil, err
	}

	return response.PickupsWithResidentToResponse(items), nil
}

// UpdateStatus overwrites the status of one request. A missing request id
// is not an error.
func (s *pickupService) UpdateStatus(ctx context.Context, req *request.UpdateStatusRequest) error {
	if !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	affected, err := s.pickupRepo.UpdateStatus(ctx, int64(req.RequestID), req.Status)
	if err != nil {
		return err
	}

	if affected == 0 {
		s.log.Warn("Status update matched no pickup request",
			zap.Int64("request_id", int64(req.RequestID)),
			zap.String("status", string(req.Status)))
		return nil
	}

	s.log.Info("Pickup status updated",
		zap.Int64("request_id", int64(req.RequestID)),
		zap.String("status", string(req.Status)))

	return nil
}
