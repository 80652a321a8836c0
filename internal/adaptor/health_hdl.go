package adaptor

import (
	"fmt"
	"net/http"

	"waste-pickup/internal/dto/response"
	"waste-pickup/pkg/utils"
)

type HealthHandler struct {
	message string
}

func NewHealthHandler(appName string) *HealthHandler {
	if appName == "" {
		appName = "AGC API"
	}
	return &HealthHandler{message: fmt.Sprintf("%s is running", appName)}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, response.HealthResponse{
		Envelope: utils.Envelope{Success: true, Message: h.message},
		Status:   "ok",
	})
}
