package records

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		today time.Time
		want  string
	}{
		{"exact years", date(2020, time.March, 15), date(2024, time.March, 15), "4y 0m 0d"},
		{"days borrow from previous month", date(2020, time.January, 15), date(2024, time.March, 10), "4y 1m 24d"},
		{"months borrow from year", date(2020, time.June, 10), date(2024, time.March, 15), "3y 9m 5d"},
		{"newborn", date(2024, time.March, 1), date(2024, time.March, 15), "0y 0m 14d"},
		// a single borrow from short February leaves a negative day count
		{"negative day after short month borrow", date(2020, time.January, 31), date(2024, time.March, 1), "4y 1m -1d"},
		{"leap day birth", date(2020, time.February, 29), date(2024, time.February, 29), "4y 0m 0d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAge(tt.birth, tt.today); got != tt.want {
				t.Errorf("CalculateAge(%v, %v) = %q, want %q", tt.birth, tt.today, got, tt.want)
			}
		})
	}
}

func TestAgeFromDOB(t *testing.T) {
	today := date(2024, time.March, 15)

	dob := "2020-03-15"
	got := AgeFromDOB(&dob, today)
	if got == nil || *got != "4y 0m 0d" {
		t.Fatalf("AgeFromDOB(%q) = %v, want 4y 0m 0d", dob, got)
	}

	if got := AgeFromDOB(nil, today); got != nil {
		t.Errorf("AgeFromDOB(nil) = %v, want nil", got)
	}

	blank := ""
	if got := AgeFromDOB(&blank, today); got != nil {
		t.Errorf("AgeFromDOB(blank) = %v, want nil", got)
	}

	garbage := "not-a-date"
	if got := AgeFromDOB(&garbage, today); got != nil {
		t.Errorf("AgeFromDOB(garbage) = %v, want nil", got)
	}
}
