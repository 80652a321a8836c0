package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"waste-pickup/internal/usecase"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Pickup   *PickupHandler
	WasteLog *WasteLogHandler
}

func NewHandler(service *usecase.Service, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Health:   NewHealthHandler(appName),
		Auth:     NewAuthHandler(service.Auth, log),
		Pickup:   NewPickupHandler(service.Pickup, log),
		WasteLog: NewWasteLogHandler(service.WasteLog, log),
	}
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// at its zero value so the field checks report what is missing.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// handleServiceError maps service errors to responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid username or password")

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
