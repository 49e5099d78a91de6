package store

import "testing"

func TestSeed(t *testing.T) {
	s := newTestStore(t)

	if err := Seed(s); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	owners := s.ListOwners()
	if len(owners) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(owners))
	}
	items := s.ListItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if !it.Owned() {
			t.Errorf("expected seeded item %q to be owned", it.Name)
		}
		if it.Condition != 95 {
			t.Errorf("expected seeded item %q at 95, got %d", it.Name, it.Condition)
		}
	}
	if got := len(s.ListHistory()); got != 2 {
		t.Errorf("expected 2 history records, got %d", got)
	}
	checkConsistency(t, s)
}
