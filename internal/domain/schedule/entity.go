package schedule

import "time"

// TimeWindow is one (start, end) pair of a weekly template slot, both
// as "HH:MM" strings. An empty start and end means the slot is unused.
type TimeWindow struct {
	Start string
	End   string
}

// IsZero reports whether the window slot is unused.
func (w TimeWindow) IsZero() bool {
	return w.Start == "" && w.End == ""
}

// WeeklyTemplate is a recurring weekly shift pattern ("horario")
// assigned to a (work center, group) pair. Templates are versioned:
// several may exist for the same pair with non-overlapping validity
// ranges.
type WeeklyTemplate struct {
	ID         string
	WorkCenter string
	Group      string
	ValidFrom  time.Time
	ValidUntil *time.Time

	// Windows holds up to three windows per weekday,
	// index 0 = Monday through index 6 = Sunday.
	Windows [7][3]TimeWindow
}

// ActiveOn reports whether the template's validity range covers date.
func (t WeeklyTemplate) ActiveOn(date time.Time) bool {
	if date.Before(t.ValidFrom) {
		return false
	}
	if t.ValidUntil != nil && date.After(*t.ValidUntil) {
		return false
	}
	return true
}

// WindowsFor returns the three window slots for the date's weekday.
func (t WeeklyTemplate) WindowsFor(date time.Time) [3]TimeWindow {
	// time.Weekday starts at Sunday; the template rows start at Monday.
	idx := (int(date.Weekday()) + 6) % 7
	return t.Windows[idx]
}
