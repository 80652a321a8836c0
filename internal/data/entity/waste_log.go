package entity

type WasteLog struct {
	ID        int64   `db:"log_id"`
	RequestID *int64  `db:"request_id"`
	WasteType *string `db:"waste_type"`
	Timestamp *string `db:"timestamp"`
}

// WasteLogDetail is a waste log left-joined to its request and resident.
// Request and resident fields are nil when the referenced rows are missing.
type WasteLogDetail struct {
	WasteLog
	PickupRequestID *int64  `db:"pickup_request_id"`
	ResidentName    *string `db:"name"`
	HouseNumber     *string `db:"house_number"`
}
