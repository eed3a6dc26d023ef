package records

import (
	"fmt"
	"time"
)

// CalculateAge renders the difference between birth and today as
// "Ny Nm Nd". Days borrow once from the month that precedes today when
// the day-of-month difference is negative; a borrow from a short month
// can leave the day component negative, and that raw value is kept.
func CalculateAge(birth, today time.Time) string {
	years := today.Year() - birth.Year()
	months := int(today.Month()) - int(birth.Month())
	days := today.Day() - birth.Day()

	if days < 0 {
		months--
		days += daysInPreviousMonth(today)
	}
	if months < 0 {
		years--
		months += 12
	}
	return fmt.Sprintf("%dy %dm %dd", years, months, days)
}

// AgeFromDOB derives the stored age string from an ISO date of birth.
// Missing, blank, or unparseable input yields nil so the column stays
// NULL.
func AgeFromDOB(dob *string, today time.Time) *string {
	if dob == nil || *dob == "" {
		return nil
	}
	birth, err := time.Parse("2006-01-02", *dob)
	if err != nil {
		return nil
	}
	age := CalculateAge(birth, today)
	return &age
}

// Day zero of the current month is the last day of the previous one.
func daysInPreviousMonth(today time.Time) int {
	return time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
}
