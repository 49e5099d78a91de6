package store

import (
	"fmt"
	"strings"

	"github.com/erazemk/shramba/internal/model"
)

// CreateItem creates a new, unowned item in perfect condition.
func (s *Store) CreateItem(name, description string) (*model.Item, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("creating item: name and description required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := s.itemIDs.next()
	s.items[id] = &itemEntry{
		name:        name,
		description: description,
		condition:   model.MaxCondition,
		createdAt:   now,
		updatedAt:   now,
	}
	return s.itemSnapshot(id), nil
}

// GetItem returns an item by ID, or nil if it does not exist.
func (s *Store) GetItem(id int64) *model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.items[id]; !ok {
		return nil
	}
	return s.itemSnapshot(id)
}

// UpdateItem updates an item's name and description.
func (s *Store) UpdateItem(id int64, name, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("updating item %d: name and description required: %w", id, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return fmt.Errorf("updating item %d: %w", id, ErrItemNotFound)
	}
	it.name = name
	it.description = description
	it.updatedAt = s.now()
	return nil
}

// DeleteItem removes the item from its owner's set, if any, and then removes
// the item. History records that mention the item are kept.
func (s *Store) DeleteItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("deleting item %d: %w", id, ErrItemNotFound)
	}
	if ownerID, held := s.heldBy[id]; held {
		s.detach(ownerID, id)
	}
	delete(s.items, id)
	return nil
}

// itemSnapshot copies an item out of the registry, resolving its owner from
// the relation table. Caller holds a lock.
func (s *Store) itemSnapshot(id int64) *model.Item {
	it := s.items[id]
	item := &model.Item{
		ID:          id,
		Name:        it.name,
		Description: it.description,
		Condition:   it.condition,
		CreatedAt:   it.createdAt,
		UpdatedAt:   it.updatedAt,
	}
	if ownerID, held := s.heldBy[id]; held {
		item.OwnerID = &ownerID
		if o, ok := s.owners[ownerID]; ok {
			item.OwnerName = o.name
		}
	}
	return item
}
