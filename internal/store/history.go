package store

import "github.com/erazemk/shramba/internal/model"

// recordTransfer appends a history record. Only state-changing assignments
// and unassignments are recorded. Caller holds the write lock.
func (s *Store) recordTransfer(kind model.RecordKind, itemID, ownerID int64, previous *int64) model.Record {
	r := model.Record{
		ID:              s.recordIDs.next(),
		Kind:            kind,
		ItemID:          itemID,
		OwnerID:         ownerID,
		PreviousOwnerID: previous,
		CreatedAt:       s.now(),
	}
	if it, ok := s.items[itemID]; ok {
		r.ItemName = it.name
	}
	if o, ok := s.owners[ownerID]; ok {
		r.OwnerName = o.name
	}
	s.history = append(s.history, r)
	return r
}

// HistoryForItem returns every record for an item, oldest first. Records
// survive deletion of the item.
func (s *Store) HistoryForItem(itemID int64) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []model.Record
	for _, r := range s.history {
		if r.ItemID == itemID {
			records = append(records, copyRecord(r))
		}
	}
	return records
}

// ListHistory returns the whole history log, oldest first.
func (s *Store) ListHistory() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.Record, 0, len(s.history))
	for _, r := range s.history {
		records = append(records, copyRecord(r))
	}
	return records
}

// copyRecord detaches the record's pointer field from the log.
func copyRecord(r model.Record) model.Record {
	if r.PreviousOwnerID != nil {
		prev := *r.PreviousOwnerID
		r.PreviousOwnerID = &prev
	}
	return r
}
