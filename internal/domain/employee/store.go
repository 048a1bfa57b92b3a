package employee

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the store needs. Satisfied by both
// the real pool and a pgxmock pool in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists employees in PostgreSQL. Date columns are selected as text
// so values surface in the canonical YYYY-MM-DD form they were stored in.
type Store struct {
	DB Querier
}

func NewStore(db Querier) *Store {
	return &Store{DB: db}
}

const employeeColumns = `id, first_name, last_name, nric, email,
           phone, dob::text, address, position, department,
           date_of_joining::text, salary, employment_type, manager`

func (s *Store) Insert(ctx context.Context, emp NewEmployee) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees
      (first_name, last_name, nric, email, phone, dob, address,
       position, department, date_of_joining, salary, employment_type, manager)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING `+employeeColumns+`
  `,
		emp.FirstName, emp.LastName, emp.NRIC, emp.Email, emp.Phone,
		emp.DOB, emp.Address, emp.Position, emp.Department,
		emp.DateOfJoining, emp.Salary, emp.EmploymentType, emp.Manager,
	)
	return scanEmployee(row)
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY id ASC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0, 16)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.NRIC, &emp.Email,
		&emp.Phone, &emp.DOB, &emp.Address, &emp.Position, &emp.Department,
		&emp.DateOfJoining, &emp.Salary, &emp.EmploymentType, &emp.Manager,
	)
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}
