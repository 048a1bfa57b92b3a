package employee

import (
	"context"
	"strings"
)

type StoreAPI interface {
	Insert(ctx context.Context, emp NewEmployee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Create validates and normalizes the submitted record, then inserts it.
// Validation failures short-circuit before any store call; store failures
// come back as *StorageError with the cause retained.
func (s *Service) Create(ctx context.Context, raw RawEmployee) (Employee, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return Employee{}, err
	}

	created, err := s.store.Insert(ctx, normalized)
	if err != nil {
		return Employee{}, &StorageError{Op: "insert", Err: err}
	}
	return created, nil
}

// List returns all records in ascending id order. A non-blank query keeps
// only records where one of the searchable fields contains it
// case-insensitively; blank queries mean no filter.
func (s *Service) List(ctx context.Context, query string) ([]Employee, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	if employees == nil {
		employees = []Employee{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return employees, nil
	}

	filtered := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if matchesQuery(emp, query) {
			filtered = append(filtered, emp)
		}
	}
	return filtered, nil
}

func matchesQuery(emp Employee, query string) bool {
	needle := strings.ToLower(query)
	candidates := []string{emp.FirstName, emp.LastName, emp.NRIC, emp.Email}
	if emp.Position != nil {
		candidates = append(candidates, *emp.Position)
	}
	if emp.Department != nil {
		candidates = append(candidates, *emp.Department)
	}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}
	return false
}
