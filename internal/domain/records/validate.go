package records

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// FieldError is a single rejected field in a validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed rule for a request so the
// client can fix them all in one pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate applies the record rules shared by create and update:
// patient_id and name are required, dates must be ISO calendar dates,
// weight must be a non-negative number, and phone numbers must be
// exactly ten digits. Optional fields left blank are not checked.
func Validate(r *Record) *ValidationError {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(r.PatientID) == "" {
		add("patient_id", "patient_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		add("name", "name is required")
	}
	if bad(r.DOB, validISODate) {
		add("dob", "must be a valid ISO-8601 date")
	}
	if bad(r.ReviewDate, validISODate) {
		add("review_date", "must be a valid ISO-8601 date")
	}
	if r.Weight.Raw != "" && (!r.Weight.Valid || r.Weight.Value < 0) {
		add("weight", "must be a non-negative number")
	}
	if bad(r.Phone1, phonePattern.MatchString) {
		add("phone1", "must be exactly 10 digits")
	}
	if bad(r.Phone2, phonePattern.MatchString) {
		add("phone2", "must be exactly 10 digits")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// bad reports whether an optional field is present, non-blank, and fails
// its rule.
func bad(s *string, ok func(string) bool) bool {
	return s != nil && *s != "" && !ok(*s)
}

func validISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
