package store

import "github.com/erazemk/shramba/internal/model"

// AssignResult describes what an assignment attempt did.
type AssignResult int

// Assignment outcomes.
const (
	AssignNotFound AssignResult = iota
	AssignBlocked
	AssignUnchanged
	AssignAttached
	AssignMoved
)

// OK reports whether the attempt counts as a success.
func (r AssignResult) OK() bool {
	return r == AssignUnchanged || r == AssignAttached || r == AssignMoved
}

func (r AssignResult) String() string {
	switch r {
	case AssignNotFound:
		return "not_found"
	case AssignBlocked:
		return "blocked"
	case AssignUnchanged:
		return "unchanged"
	case AssignAttached:
		return "assigned"
	case AssignMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Assign gives an item to an owner and reports whether it succeeded.
// See AssignItem for the rules.
func (s *Store) Assign(itemID, ownerID int64) bool {
	return s.AssignItem(itemID, ownerID).OK()
}

// AssignItem gives an item to an owner.
//
// The attempt fails if either identifier does not resolve or if the item's
// condition is below model.MinAssignCondition; AssignmentBlockReason then
// explains the latter. An item already held by the owner is left untouched.
// An item held by someone else is moved. Every actual change applies
// model.WearPerAssignment to the item and appends an assign record.
func (s *Store) AssignItem(itemID, ownerID int64) AssignResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok {
		return AssignNotFound
	}
	if _, ok := s.owners[ownerID]; !ok {
		return AssignNotFound
	}
	if blockReason(it.condition) != "" {
		return AssignBlocked
	}

	current, held := s.heldBy[itemID]
	if held && current == ownerID {
		return AssignUnchanged
	}

	result := AssignAttached
	var previous *int64
	if held {
		s.detach(current, itemID)
		previous = &current
		result = AssignMoved
	}
	s.attach(ownerID, itemID)

	it.condition = model.ClampCondition(it.condition - model.WearPerAssignment)
	it.updatedAt = s.now()

	s.recordTransfer(model.RecordAssign, itemID, ownerID, previous)
	return result
}

// Unassign takes an item away from an owner. It returns false, changing
// nothing, if either identifier does not resolve or the owner does not hold
// the item. Condition is not restored.
func (s *Store) Unassign(ownerID, itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok {
		return false
	}
	if _, ok := s.owners[ownerID]; !ok {
		return false
	}
	if current, held := s.heldBy[itemID]; !held || current != ownerID {
		return false
	}

	s.detach(ownerID, itemID)
	it.updatedAt = s.now()

	s.recordTransfer(model.RecordUnassign, itemID, ownerID, nil)
	return true
}
