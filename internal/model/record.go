package model

import "time"

// Record is an immutable history entry for one ownership change.
type Record struct {
	ID              int64      `json:"id"`
	Kind            RecordKind `json:"kind"`
	ItemID          int64      `json:"item_id"`
	OwnerID         int64      `json:"owner_id"`
	PreviousOwnerID *int64     `json:"previous_owner_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	// Names as they were when the record was written. The referenced
	// entities may have been deleted since.
	ItemName  string `json:"item_name"`
	OwnerName string `json:"owner_name"`
}

// RecordKind is the kind of ownership change a Record describes.
type RecordKind string

// Record kinds. The set is closed.
const (
	RecordAssign   RecordKind = "assign"
	RecordUnassign RecordKind = "unassign"
)
