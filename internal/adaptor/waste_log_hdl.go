package adaptor

import (
	"net/http"

	"waste-pickup/internal/dto/response"
	"waste-pickup/internal/usecase"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

type WasteLogHandler struct {
	service usecase.WasteLogService
	log     *zap.Logger
}

func NewWasteLogHandler(service usecase.WasteLogService, log *zap.Logger) *WasteLogHandler {
	return &WasteLogHandler{
		service: service,
		log:     log,
	}
}

// WasteLogs handles GET /api/waste-logs
func (h *WasteLogHandler) WasteLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list waste logs")
		return
	}

	utils.ResponseSuccess(w, response.WasteLogsResponse{
		Envelope: utils.Envelope{Success: true},
		Logs:     logs,
	})
}
