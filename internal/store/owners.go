package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erazemk/shramba/internal/model"
)

// CreateOwner creates a new owner with the next owner identifier.
func (s *Store) CreateOwner(name string) (*model.Owner, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("creating owner: name required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ownerIDs.next()
	s.owners[id] = &ownerEntry{name: name, createdAt: s.now()}
	return s.ownerSnapshot(id), nil
}

// GetOwner returns an owner by ID, or nil if it does not exist.
func (s *Store) GetOwner(id int64) *model.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.owners[id]; !ok {
		return nil
	}
	return s.ownerSnapshot(id)
}

// UpdateOwnerName renames an owner.
func (s *Store) UpdateOwnerName(id int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("updating owner %d: name required: %w", id, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[id]
	if !ok {
		return fmt.Errorf("updating owner %d: %w", id, ErrOwnerNotFound)
	}
	o.name = name
	return nil
}

// DeleteOwner releases every item the owner holds and then removes the owner.
// History records that mention the owner are kept.
func (s *Store) DeleteOwner(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[id]; !ok {
		return fmt.Errorf("deleting owner %d: %w", id, ErrOwnerNotFound)
	}

	now := s.now()
	for itemID := range s.holdings[id] {
		s.detach(id, itemID)
		if it, ok := s.items[itemID]; ok {
			it.updatedAt = now
		}
	}
	delete(s.owners, id)
	return nil
}

// ownerSnapshot copies an owner out of the registry. Caller holds a lock.
func (s *Store) ownerSnapshot(id int64) *model.Owner {
	o := s.owners[id]
	ids := make([]int64, 0, len(s.holdings[id]))
	for itemID := range s.holdings[id] {
		ids = append(ids, itemID)
	}
	slices.Sort(ids)

	return &model.Owner{
		ID:        id,
		Name:      o.name,
		ItemIDs:   ids,
		CreatedAt: o.createdAt,
	}
}
