package usecase

import (
	"context"
	"fmt"

	"waste-pickup/internal/data/repository"
	"waste-pickup/internal/dto/request"
	"waste-pickup/internal/dto/response"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", req.Username, err)
	}

	if user == nil {
		s.log.Warn("Invalid login attempt", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}
