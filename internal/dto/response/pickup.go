package response

import (
	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/utils"
)

type PickupCreatedResponse struct {
	utils.Envelope
	RequestID int64               `json:"request_id"`
	Timestamp string              `json:"timestamp"`
	Status    entity.PickupStatus `json:"status"`
}

type PickupResponse struct {
	RequestID int64               `json:"request_id"`
	Timestamp string              `json:"timestamp"`
	Status    entity.PickupStatus `json:"status"`
}

type PickupWithResidentResponse struct {
	RequestID    int64               `json:"request_id"`
	Timestamp    string              `json:"timestamp"`
	Status       entity.PickupStatus `json:"status"`
	ResidentName *string             `json:"resident_name"`
	HouseNumber  *string             `json:"house_number"`
}

type MyRequestsResponse struct {
	utils.Envelope
	Requests []PickupResponse `json:"requests"`
}

type AllRequestsResponse struct {
	utils.Envelope
	Requests []PickupWithResidentResponse `json:"requests"`
}

func PickupCreatedToResponse(pr *entity.PickupRequest) PickupCreatedResponse {
	return PickupCreatedResponse{
		Envelope:  utils.Envelope{Success: true, Message: "Pickup request created"},
		RequestID: pr.ID,
		Timestamp: pr.Timestamp,
		Status:    pr.Status,
	}
}

func PickupsToResponse(items []*entity.PickupRequest) []PickupResponse {
	out := make([]PickupResponse, 0, len(items))
	for _, pr := range items {
		out = append(out, PickupResponse{
			RequestID: pr.ID,
			Timestamp: pr.Timestamp,
			Status:    pr.Status,
		})
	}
	return out
}

func PickupsWithResidentToResponse(items []*entity.PickupWithResident) []PickupWithResidentResponse {
	out := make([]PickupWithResidentResponse, 0, len(items))
	for _, pr := range items {
		out = append(out, PickupWithResidentResponse{
			RequestID:    pr.ID,
			Timestamp:    pr.Timestamp,
			Status:       pr.Status,
			ResidentName: pr.ResidentName,
			HouseNumber:  pr.HouseNumber,
		})
	}
	return out
}
