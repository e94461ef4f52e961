package console

import "github.com/csg33k/employee-console/internal/domain"

// Store is the ordered record collection from the last successful load.
// It is replaced wholesale, never merged. The zero value is an empty store.
type Store struct {
	records []domain.Employee
}

// Replace swaps in a copy of records, keeping the server's order.
func (s *Store) Replace(records []domain.Employee) {
	s.records = append(make([]domain.Employee, 0, len(records)), records...)
}

// All returns a copy of the records.
func (s *Store) All() []domain.Employee {
	return append(make([]domain.Employee, 0, len(s.records)), s.records...)
}

// Find returns the record with the given id.
func (s *Store) Find(id int64) (domain.Employee, bool) {
	for _, e := range s.records {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

func (s *Store) Len() int { return len(s.records) }
