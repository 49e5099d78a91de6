package store

import "fmt"

// Seed fills an empty store with sample owners and items and assigns one
// item to each owner.
func Seed(s *Store) error {
	harry, err := s.CreateOwner("Harry Potter")
	if err != nil {
		return fmt.Errorf("seeding owners: %w", err)
	}
	hermione, err := s.CreateOwner("Hermione Granger")
	if err != nil {
		return fmt.Errorf("seeding owners: %w", err)
	}

	cloak, err := s.CreateItem("Invisibility Cloak", "A magical cloak that makes the wearer invisible.")
	if err != nil {
		return fmt.Errorf("seeding items: %w", err)
	}
	turner, err := s.CreateItem("Time-Turner", "A device used for time travel.")
	if err != nil {
		return fmt.Errorf("seeding items: %w", err)
	}

	if !s.Assign(cloak.ID, harry.ID) {
		return fmt.Errorf("seeding assignment: %s to %s failed", cloak.Name, harry.Name)
	}
	if !s.Assign(turner.ID, hermione.ID) {
		return fmt.Errorf("seeding assignment: %s to %s failed", turner.Name, hermione.Name)
	}
	return nil
}
