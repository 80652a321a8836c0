package response

import (
	"waste-pickup/internal/data/entity"
	"waste-pickup/pkg/utils"
)

type WasteLogResponse struct {
	LogID        int64   `json:"log_id"`
	WasteType    *string `json:"waste_type"`
	Timestamp    *string `json:"timestamp"`
	RequestID    *int64  `json:"request_id"`
	ResidentName *string `json:"resident_name"`
	HouseNumber  *string `json:"house_number"`
}

type WasteLogsResponse struct {
	utils.Envelope
	Logs []WasteLogResponse `json:"logs"`
}

func WasteLogsToResponse(items []*entity.WasteLogDetail) []WasteLogResponse {
	out := make([]WasteLogResponse, 0, len(items))
	for _, wl := range items {
		out = append(out, WasteLogResponse{
			LogID:        wl.ID,
			WasteType:    wl.WasteType,
			Timestamp:    wl.Timestamp,
			RequestID:    wl.PickupRequestID,
			ResidentName: wl.ResidentName,
			HouseNumber:  wl.HouseNumber,
		})
	}
	return out
}
