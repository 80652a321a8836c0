package entity

// PickupStatus is the lifecycle state of a pickup request.
type PickupStatus string

const (
	StatusPending    PickupStatus = "PENDING"
	StatusInProgress PickupStatus = "IN-PROGRESS"
	StatusCompleted  PickupStatus = "COMPLETED"
)

// PickupStatuses lists every accepted status in lifecycle order.
var PickupStatuses = []PickupStatus{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known statuses.
func (s PickupStatus) Valid() bool {
	for _, known := range PickupStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PickupRequest struct {
	ID        int64        `db:"request_id"`
	UserID    int64        `db:"user_id"`
	Timestamp string       `db:"timestamp"`
	Status    PickupStatus `db:"status"`
}

// PickupWithResident is a pickup request joined with its requester.
type PickupWithResident struct {
	PickupRequest
	ResidentName *string `db:"name"`
	HouseNumber  *string `db:"house_number"`
}
