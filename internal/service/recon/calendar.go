package recon

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
)

const dateLayout = "2006-01-02"
const monthKeyLayout = "2006-01"

// parseMonthKey parses an ISO month key (YYYY-MM).
func parseMonthKey(key string) (int, time.Month, error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", recon.ErrInvalidPeriod, key)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return 0, 0, fmt.Errorf("%w: %q", recon.ErrInvalidPeriod, key)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", recon.ErrInvalidPeriod, key)
	}
	return year, time.Month(month), nil
}

// parseYearKey parses a four-digit year key.
func parseYearKey(key string) (int, error) {
	year, err := strconv.Atoi(key)
	if err != nil || len(key) != 4 {
		return 0, fmt.Errorf("%w: %q", recon.ErrInvalidPeriod, key)
	}
	return year, nil
}

// monthDays returns every calendar day of the month, in order, as UTC
// midnights. Month lengths, including February in leap years, come
// straight from the time package's date normalization.
func monthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	days := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func monthKeyOf(date time.Time) string {
	return date.Format(monthKeyLayout)
}

func dateKeyOf(date time.Time) string {
	return date.Format(dateLayout)
}
