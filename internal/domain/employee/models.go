package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Employee is a stored record. Optional columns are pointers so absent
// values serialize as JSON null, never as empty strings. Date fields hold
// the canonical YYYY-MM-DD text form.
type Employee struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	NRIC           string  `json:"nric"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	DOB            *string `json:"dob"`
	Address        *string `json:"address"`
	Position       *string `json:"position"`
	Department     *string `json:"department"`
	DateOfJoining  *string `json:"date_of_joining"`
	Salary         *int64  `json:"salary"`
	EmploymentType *string `json:"employment_type"`
	Manager        *string `json:"manager"`
}

// NewEmployee is a normalized record ready for insertion. Produced only by
// Normalize, so required fields are trimmed and non-empty and dates are in
// canonical form.
type NewEmployee struct {
	FirstName      string
	LastName       string
	NRIC           string
	Email          string
	Phone          *string
	DOB            *string
	Address        *string
	Position       *string
	Department     *string
	DateOfJoining  *string
	Salary         *int64
	EmploymentType *string
	Manager        *string
}

// RawEmployee is a submitted record before validation. Every field is a
// Field so clients may send strings, numbers, or null interchangeably.
type RawEmployee struct {
	FirstName      Field `json:"first_name"`
	LastName       Field `json:"last_name"`
	NRIC           Field `json:"nric"`
	Email          Field `json:"email"`
	Phone          Field `json:"phone"`
	DOB            Field `json:"dob"`
	Address        Field `json:"address"`
	Position       Field `json:"position"`
	Department     Field `json:"department"`
	DateOfJoining  Field `json:"date_of_joining"`
	Salary         Field `json:"salary"`
	EmploymentType Field `json:"employment_type"`
	Manager        Field `json:"manager"`
}

// Field decodes a JSON string, number, or null into its textual form.
// Null and absent both decode to the empty string, which Normalize treats
// as no value.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("field must be a string, number, or null")
	}
	*f = Field(n.String())
	return nil
}

func (f Field) String() string {
	return string(f)
}
