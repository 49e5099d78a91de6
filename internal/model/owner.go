package model

import "time"

// Owner represents a person who can hold items.
type Owner struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ItemIDs   []int64   `json:"item_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// Holds reports whether itemID is in the owner's set.
func (o *Owner) Holds(itemID int64) bool {
	for _, id := range o.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
