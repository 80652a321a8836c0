package request

import "waste-pickup/internal/data/entity"

// CreatePickupRequest only requires a non-zero user_id. References are soft,
// so an unknown or negative id is stored as given.
type CreatePickupRequest struct {
	UserID ID `json:"user_id" validate:"required"`
}

type UpdateStatusRequest struct {
	RequestID ID                  `json:"request_id" validate:"required"`
	Status    entity.PickupStatus `json:"status" validate:"required,oneof=PENDING IN-PROGRESS COMPLETED"`
}
