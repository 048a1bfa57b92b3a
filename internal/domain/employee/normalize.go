package employee

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// requiredFields is checked in order; the first missing field is the one
// reported, even when several are missing.
var requiredFields = []string{"first_name", "last_name", "nric", "email"}

// Normalize validates a submitted record and coerces it into storable form.
// Required fields must be non-empty after trimming. Optional fields follow a
// lenient policy: empty strings become absent, dates that do not parse as
// YYYY-MM-DD or DD/MM/YYYY become absent, and non-numeric salaries become
// absent. Lenient coercion never produces an error.
func Normalize(raw RawEmployee) (NewEmployee, error) {
	values := map[string]string{
		"first_name": strings.TrimSpace(raw.FirstName.String()),
		"last_name":  strings.TrimSpace(raw.LastName.String()),
		"nric":       strings.TrimSpace(raw.NRIC.String()),
		"email":      strings.TrimSpace(raw.Email.String()),
	}
	for _, field := range requiredFields {
		if values[field] == "" {
			return NewEmployee{}, &ValidationError{Field: field}
		}
	}

	return NewEmployee{
		FirstName:      values["first_name"],
		LastName:       values["last_name"],
		NRIC:           values["nric"],
		Email:          values["email"],
		Phone:          optionalText(raw.Phone),
		DOB:            toISODate(raw.DOB),
		Address:        optionalText(raw.Address),
		Position:       optionalText(raw.Position),
		Department:     optionalText(raw.Department),
		DateOfJoining:  toISODate(raw.DateOfJoining),
		Salary:         parseSalary(raw.Salary),
		EmploymentType: optionalText(raw.EmploymentType),
		Manager:        optionalText(raw.Manager),
	}, nil
}

// optionalText trims the value and maps empty input to absent.
func optionalText(f Field) *string {
	trimmed := strings.TrimSpace(f.String())
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// toISODate accepts YYYY-MM-DD (passed through) or DD/MM/YYYY (rewritten to
// ISO). Anything else, including digit groups that do not form a real
// calendar date, is absent.
func toISODate(f Field) *string {
	trimmed := strings.TrimSpace(f.String())
	if trimmed == "" {
		return nil
	}
	if _, err := time.Parse(isoDateLayout, trimmed); err == nil {
		return &trimmed
	}
	if parsed, err := time.Parse("02/01/2006", trimmed); err == nil {
		iso := parsed.Format(isoDateLayout)
		return &iso
	}
	return nil
}

// parseSalary parses an integer salary. Fractional input is truncated toward
// zero; anything non-numeric is absent.
func parseSalary(f Field) *int64 {
	trimmed := strings.TrimSpace(f.String())
	if trimmed == "" {
		return nil
	}
	if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return &parsed
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	truncated := int64(math.Trunc(parsed))
	return &truncated
}
