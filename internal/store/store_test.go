package store

import (
	"sync"
	"testing"
	"time"
)

// newTestStore returns an empty store whose clock advances one second per
// call, so timestamps are deterministic and strictly increasing.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New()
	var mu sync.Mutex
	clock := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

// checkConsistency verifies that the forward relation and the item
// back-references mirror each other exactly, both in the raw tables and in
// the snapshots handed to callers.
func checkConsistency(t *testing.T, s *Store) {
	t.Helper()

	s.mu.RLock()
	for ownerID, set := range s.holdings {
		if _, ok := s.owners[ownerID]; !ok {
			t.Errorf("holdings reference missing owner %d", ownerID)
		}
		for itemID := range set {
			if got, ok := s.heldBy[itemID]; !ok || got != ownerID {
				t.Errorf("item %d in owner %d's set but back-reference is %d (held=%v)", itemID, ownerID, got, ok)
			}
		}
	}
	for itemID, ownerID := range s.heldBy {
		if _, ok := s.items[itemID]; !ok {
			t.Errorf("back-reference for missing item %d", itemID)
		}
		if _, ok := s.holdings[ownerID][itemID]; !ok {
			t.Errorf("item %d points at owner %d which does not hold it", itemID, ownerID)
		}
	}
	s.mu.RUnlock()

	seen := make(map[int64]int64)
	for _, o := range s.ListOwners() {
		for _, itemID := range o.ItemIDs {
			if prev, dup := seen[itemID]; dup {
				t.Errorf("item %d held by both owner %d and owner %d", itemID, prev, o.ID)
			}
			seen[itemID] = o.ID
		}
	}
	for _, it := range s.ListItems() {
		ownerID, held := seen[it.ID]
		switch {
		case held && it.OwnerID == nil:
			t.Errorf("item %d is in owner %d's set but reports no owner", it.ID, ownerID)
		case !held && it.OwnerID != nil:
			t.Errorf("item %d reports owner %d but is in no set", it.ID, *it.OwnerID)
		case held && *it.OwnerID != ownerID:
			t.Errorf("item %d reports owner %d, set says %d", it.ID, *it.OwnerID, ownerID)
		}
	}
}

func TestConcurrentAssignKeepsOwnershipExclusive(t *testing.T) {
	s := newTestStore(t)

	var ownerIDs []int64
	for _, name := range []string{"Harry", "Ron", "Hermione", "Ginny"} {
		o, _ := s.CreateOwner(name)
		ownerIDs = append(ownerIDs, o.ID)
	}
	var itemIDs []int64
	for _, name := range []string{"Wand", "Broom", "Map"} {
		it, _ := s.CreateItem(name, "shared")
		itemIDs = append(itemIDs, it.ID)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				itemID := itemIDs[(w+i)%len(itemIDs)]
				ownerID := ownerIDs[(w*i)%len(ownerIDs)]
				if i%3 == 0 {
					s.Unassign(ownerID, itemID)
				} else {
					s.Assign(itemID, ownerID)
				}
				if i%10 == 0 {
					s.Repair(itemID, 50)
				}
			}
		}(w)
	}
	wg.Wait()

	checkConsistency(t, s)
}

func TestConcurrentCreateAllocatesUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	const workers, perWorker = 8, 25
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				o, err := s.CreateOwner("Owner")
				if err != nil {
					t.Errorf("CreateOwner: %v", err)
					return
				}
				ids <- o.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate owner id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("expected %d owners, got %d", workers*perWorker, len(seen))
	}
}
