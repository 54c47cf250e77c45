package clockevent

import "time"

// ClockEvent is one raw attendance punch aggregate for a day. The
// terminal export stores the worked duration in minutes as text; the
// value may be missing, blank, zero or plain garbage and is parsed
// fail-open downstream.
type ClockEvent struct {
	EmployeeCode    string
	Date            time.Time
	DurationMinutes *string
}
