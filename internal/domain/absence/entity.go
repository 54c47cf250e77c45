package absence

import (
	"strings"
	"time"
)

// SickLeave is one interval during which an employee is on medical
// leave. An open-ended case has no end date and covers everything from
// its start onward.
type SickLeave struct {
	EmployeeCode string
	StartDate    time.Time
	EndDate      *time.Time
}

// Covers reports whether the sick-leave interval contains date.
// Open-ended cases run through periodEnd.
func (s SickLeave) Covers(date, periodEnd time.Time) bool {
	if date.Before(s.StartDate) {
		return false
	}
	end := periodEnd
	if s.EndDate != nil {
		end = *s.EndDate
	}
	return !date.After(end)
}

// Absence is one free-text-dated absence record. RawDates is whatever
// the HR clerk typed ("01/07/2025 - 15/07/2025", "3/8/25 al 7/8/25",
// a single date, ...) and needs parsing; malformed text matches no
// days.
type Absence struct {
	EmployeeCode string
	Type         string
	RawDates     string
}

// IsVacation reports whether the absence type is a vacation label as
// opposed to any other free-form label.
func (a Absence) IsVacation() bool {
	return strings.Contains(strings.ToLower(a.Type), "vacacion")
}
