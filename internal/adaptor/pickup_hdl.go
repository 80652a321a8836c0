package adaptor

import (
	"net/http"

	"waste-pickup/internal/dto/request"
	"waste-pickup/internal/dto/response"
	"waste-pickup/internal/usecase"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgUserIDRequired        = "user_id is required"
	msgRequestStatusRequired = "request_id and status required"
	msgInvalidStatus         = "status must be one of: PENDING, IN-PROGRESS, COMPLETED"
)

type PickupHandler struct {
	service usecase.PickupService
	log     *zap.Logger
}

func NewPickupHandler(service usecase.PickupService, log *zap.Logger) *PickupHandler {
	return &PickupHandler{
		service: service,
		log:     log,
	}
}

// RequestPickup handles POST /api/request-pickup
func (h *PickupHandler) RequestPickup(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePickupRequest

	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, msgUserIDRequired, validationErrors)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "request pickup")
		return
	}

	utils.ResponseCreated(w, resp)
}

// MyRequests handles GET /api/my-requests?user_id=
func (h *PickupHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		utils.ResponseBadRequest(w, msgUserIDRequired, nil)
		return
	}

	userID, ok := utils.ParseID(raw)
	if !ok {
		utils.ResponseBadRequest(w, "user_id must be a positive number", nil)
		return
	}

	requests, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list my requests")
		return
	}

	utils.ResponseSuccess(w, response.MyRequestsResponse{
		Envelope: utils.Envelope{Success: true},
		Requests: requests,
	})
}

// AllRequests handles GET /api/all-requests
func (h *PickupHandler) AllRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all requests")
		return
	}

	utils.ResponseSuccess(w, response.AllRequestsResponse{
		Envelope: utils.Envelope{Success: true},
		Requests: requests,
	})
}

// UpdateStatus handles POST /api/update-status
func (h *PickupHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStatusRequest

	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if req.RequestID == 0 || req.Status == "" {
		utils.ResponseBadRequest(w, msgRequestStatusRequired, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, msgInvalidStatus, validationErrors)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "update status")
		return
	}

	utils.ResponseSuccess(w, utils.Envelope{Success: true, Message: "Status updated successfully"})
}
