package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"waste-pickup/internal/dto/request"
	"waste-pickup/internal/dto/response"
	"waste-pickup/internal/usecase"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeJSON(r, &req); err != nil {
		// a non-string credential can never match a stored row
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			handleServiceError(w, h.log, usecase.ErrInvalidCredentials, "login")
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, response.LoginResponse{
		Envelope: utils.Envelope{Success: true},
		User:     *user,
	})
}
