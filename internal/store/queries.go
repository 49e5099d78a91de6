package store

import (
	"slices"

	"github.com/erazemk/shramba/internal/model"
)

// Stats is a point-in-time count of registry contents.
type Stats struct {
	Owners        int
	Items         int
	AssignedItems int
	Records       int
}

// ListOwners returns all owners in creation order.
func (s *Store) ListOwners() []model.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owners := make([]model.Owner, 0, len(s.owners))
	for _, id := range sortedKeys(s.owners) {
		owners = append(owners, *s.ownerSnapshot(id))
	}
	return owners
}

// ListItems returns all items in creation order.
func (s *Store) ListItems() []model.Item {
	return s.filterItems(func(int64) bool { return true })
}

// UnassignedItems returns items nobody holds.
func (s *Store) UnassignedItems() []model.Item {
	return s.filterItems(func(id int64) bool {
		_, held := s.heldBy[id]
		return !held
	})
}

// AssignedItems returns the items held by ownerID. An unknown owner holds
// nothing.
func (s *Store) AssignedItems(ownerID int64) []model.Item {
	return s.filterItems(func(id int64) bool {
		current, held := s.heldBy[id]
		return held && current == ownerID
	})
}

// Stats counts the registry contents.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Owners:        len(s.owners),
		Items:         len(s.items),
		AssignedItems: len(s.heldBy),
		Records:       len(s.history),
	}
}

// filterItems snapshots the items matching keep, in creation order. keep is
// called with the read lock held.
func (s *Store) filterItems(keep func(id int64) bool) []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Item, 0, len(s.items))
	for _, id := range sortedKeys(s.items) {
		if keep(id) {
			items = append(items, *s.itemSnapshot(id))
		}
	}
	return items
}

// sortedKeys returns map keys ascending. Identifiers grow monotonically, so
// this is creation order.
func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
