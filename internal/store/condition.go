package store

import (
	"fmt"

	"github.com/erazemk/shramba/internal/model"
)

// BlockReasonLowCondition is reported for items too worn to be assigned.
const BlockReasonLowCondition = "condition too low, repair first"

// Repair amounts accepted from callers.
const (
	MinRepairAmount = 1
	MaxRepairAmount = 100
)

// ValidateRepairAmount checks a caller-supplied repair amount.
func ValidateRepairAmount(amount int) error {
	if amount < MinRepairAmount || amount > MaxRepairAmount {
		return fmt.Errorf("repair amount must be between %d and %d: %w", MinRepairAmount, MaxRepairAmount, ErrInvalidInput)
	}
	return nil
}

// Repair raises an item's condition by amount, capped at model.MaxCondition,
// and returns the new condition. Ownership is not affected.
func (s *Store) Repair(itemID int64, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("repairing item %d: negative amount: %w", itemID, ErrInvalidInput)
	}
	return s.adjustCondition(itemID, amount, "repairing")
}

// ApplyWear lowers an item's condition by amount, floored at
// model.MinCondition, and returns the new condition. Ownership is not
// affected.
func (s *Store) ApplyWear(itemID int64, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("wearing item %d: negative amount: %w", itemID, ErrInvalidInput)
	}
	return s.adjustCondition(itemID, -amount, "wearing")
}

func (s *Store) adjustCondition(itemID int64, delta int, verb string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok {
		return 0, fmt.Errorf("%s item %d: %w", verb, itemID, ErrItemNotFound)
	}
	it.condition = shiftCondition(it.condition, delta)
	it.updatedAt = s.now()
	return it.condition, nil
}

// shiftCondition adds delta to condition within [model.MinCondition,
// model.MaxCondition]. Bounds are compared before adding so a huge delta
// cannot overflow.
func shiftCondition(condition, delta int) int {
	switch {
	case delta >= model.MaxCondition-condition:
		return model.MaxCondition
	case delta <= model.MinCondition-condition:
		return model.MinCondition
	default:
		return condition + delta
	}
}

// AssignmentBlockReason returns why the item cannot be assigned right now,
// or "" if it is eligible or does not exist.
func (s *Store) AssignmentBlockReason(itemID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[itemID]
	if !ok {
		return ""
	}
	return blockReason(it.condition)
}

func blockReason(condition int) string {
	if condition < model.MinAssignCondition {
		return BlockReasonLowCondition
	}
	return ""
}
