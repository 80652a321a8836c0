package response

import (
	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/utils"
)

type UserResponse struct {
	UserID      int64           `json:"user_id"`
	Name        string          `json:"name"`
	HouseNumber *string         `json:"house_number"`
	Role        entity.UserRole `json:"role"`
}

type LoginResponse struct {
	utils.Envelope
	User UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:      user.ID,
		Name:        user.Name,
		HouseNumber: user.HouseNumber,
		Role:        user.Role,
	}
}
