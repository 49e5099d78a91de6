// Package store holds the in-memory registry of owners and items, the
// exclusive ownership relation between them and the history of changes to
// that relation.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/erazemk/shramba/internal/model"
)

// Errors returned by update, delete and condition operations.
var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidInput  = errors.New("invalid input")
)

type ownerEntry struct {
	name      string
	createdAt time.Time
}

type itemEntry struct {
	name        string
	description string
	condition   int
	createdAt   time.Time
	updatedAt   time.Time
}

// Store is the canonical registry. All mutations run under a single lock so
// that check-then-write sequences (eligibility, detach, attach, wear, record)
// are atomic to callers.
type Store struct {
	mu sync.RWMutex

	owners map[int64]*ownerEntry
	items  map[int64]*itemEntry

	// holdings is the source of truth for ownership (owner -> items).
	// heldBy is its inverse and must always mirror it exactly.
	holdings map[int64]map[int64]struct{}
	heldBy   map[int64]int64

	history []model.Record

	ownerIDs  sequence
	itemIDs   sequence
	recordIDs sequence

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		owners:   make(map[int64]*ownerEntry),
		items:    make(map[int64]*itemEntry),
		holdings: make(map[int64]map[int64]struct{}),
		heldBy:   make(map[int64]int64),
		now:      time.Now,
	}
}

// attach adds itemID to ownerID's set. Caller holds the write lock and has
// already detached the item from any previous owner.
func (s *Store) attach(ownerID, itemID int64) {
	set, ok := s.holdings[ownerID]
	if !ok {
		set = make(map[int64]struct{})
		s.holdings[ownerID] = set
	}
	set[itemID] = struct{}{}
	s.heldBy[itemID] = ownerID
}

// detach removes itemID from ownerID's set. Caller holds the write lock.
func (s *Store) detach(ownerID, itemID int64) {
	if set, ok := s.holdings[ownerID]; ok {
		delete(set, itemID)
		if len(set) == 0 {
			delete(s.holdings, ownerID)
		}
	}
	delete(s.heldBy, itemID)
}
