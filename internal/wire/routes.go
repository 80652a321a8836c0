package wire

import (
	"waste-pickup/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHealth(r chi.Router, h *adaptor.HealthHandler) {
	r.Get("/health", h.Health)
}

func wireAuth(r chi.Router, h *adaptor.AuthHandler) {
	r.Post("/login", h.Login)
}

// Resident and admin routes. Admin routes carry no role check.
func wirePickup(r chi.Router, h *adaptor.PickupHandler) {
	// resident
	r.Post("/request-pickup", h.RequestPickup)
	r.Get("/my-requests", h.MyRequests)

	// admin
	r.Get("/all-requests", h.AllRequests)
	r.Post("/update-status", h.UpdateStatus)
}

func wireWasteLog(r chi.Router, h *adaptor.WasteLogHandler) {
	r.Get("/waste-logs", h.WasteLogs)
}
