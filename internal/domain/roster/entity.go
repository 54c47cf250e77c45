package roster

// MonthlyRoster is one month's per-day shift assignment for one
// employee (the "cuadrante"). Month labels in the source table are
// stored interchangeably as Spanish month names or numbers; the
// repository normalizes them to an ISO YYYY-MM key before the roster
// reaches this type.
type MonthlyRoster struct {
	EmployeeCode string
	MonthKey     string
	WorkCenter   string

	// Days holds the raw cell per day of month, index 0 = day 1.
	// Cells carry shift codes in several encodings and may be empty.
	Days [31]string
}

// Day returns the raw cell for a 1-based day of month.
func (r MonthlyRoster) Day(day int) string {
	if day < 1 || day > 31 {
		return ""
	}
	return r.Days[day-1]
}
