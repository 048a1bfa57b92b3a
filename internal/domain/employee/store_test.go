package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var employeeTestColumns = []string{
	"id", "first_name", "last_name", "nric", "email",
	"phone", "dob", "address", "position", "department",
	"date_of_joining", "salary", "employment_type", "manager",
}

func TestStoreListOrdersByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows(employeeTestColumns).
		AddRow(int64(1), "Ada", "Lovelace", "S1234567A", "ada@x.com", nil, strPtr("1990-06-15"), nil, nil, nil, nil, nil, nil, nil).
		AddRow(int64(2), "Grace", "Hopper", "S7654321B", "grace@x.com", nil, nil, nil, nil, strPtr("Engineering"), nil, int64Ptr(6500), nil, nil)

	mock.ExpectQuery(`(?s)SELECT .+ FROM employees\s+ORDER BY id ASC`).WillReturnRows(rows)

	store := NewStore(mock)
	employees, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].ID != 1 || employees[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", employees)
	}
	if employees[0].DOB == nil || *employees[0].DOB != "1990-06-15" {
		t.Fatalf("expected canonical dob text, got %v", employees[0].DOB)
	}
	if employees[0].Salary != nil {
		t.Fatal("expected absent salary to scan as nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreInsertReturnsStoredRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	emp := NewEmployee{
		FirstName: "Ada",
		LastName:  "Lovelace",
		NRIC:      "S1234567A",
		Email:     "ada@x.com",
		DOB:       strPtr("1990-06-15"),
		Salary:    int64Ptr(5000),
	}

	returned := pgxmock.NewRows(employeeTestColumns).
		AddRow(int64(7), "Ada", "Lovelace", "S1234567A", "ada@x.com", nil, strPtr("1990-06-15"), nil, nil, nil, nil, int64Ptr(5000), nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("Ada", "Lovelace", "S1234567A", "ada@x.com", (*string)(nil), emp.DOB, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), emp.Salary, (*string)(nil), (*string)(nil)).
		WillReturnRows(returned)

	store := NewStore(mock)
	created, err := store.Insert(context.Background(), emp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected generated id 7, got %d", created.ID)
	}
	if created.Salary == nil || *created.Salary != 5000 {
		t.Fatalf("expected stored salary, got %v", created.Salary)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreInsertPropagatesError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	cause := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(cause)

	store := NewStore(mock)
	_, err = store.Insert(context.Background(), NewEmployee{FirstName: "Ada", LastName: "Lovelace", NRIC: "S1234567A", Email: "ada@x.com"})
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to propagate, got %v", err)
	}
}
