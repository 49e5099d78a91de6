package model

import "time"

// Item represents a single tracked item with a condition score.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Condition   int       `json:"condition"`
	OwnerID     *int64    `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined fields (not always populated).
	OwnerName string `json:"owner_name,omitempty"`
}

// Condition bounds and rules.
const (
	MaxCondition       = 100
	MinCondition       = 0
	MinAssignCondition = 10
	WearPerAssignment  = 5
)

// Owned reports whether the item currently has an owner.
func (i *Item) Owned() bool {
	return i.OwnerID != nil
}

// ClampCondition limits c to [MinCondition, MaxCondition].
func ClampCondition(c int) int {
	if c > MaxCondition {
		return MaxCondition
	}
	if c < MinCondition {
		return MinCondition
	}
	return c
}
