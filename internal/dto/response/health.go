package response

import "waste-pickup/pkg/utils"

type HealthResponse struct {
	utils.Envelope
	Status string `json:"status"`
}
