package recon

import (
	"regexp"
	"time"
)

// dateRange is one resolved absence interval.
type dateRange struct {
	Start time.Time
	End   time.Time
}

func (r dateRange) Covers(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

var dateTokenRegex = regexp.MustCompile(`\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}`)

var dateTokenLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2-1-2006",
	"2-1-06",
	"2.1.2006",
	"2.1.06",
}

// parseAbsenceDates resolves the free-form date-range text of an
// absence record ("01/07/2025 - 15/07/2025", "3/8/25 al 7/8/25", a
// single date, ...). The first date token found is the start, the last
// one the end; whatever the clerk typed between them is ignored. Text
// with no parseable date matches no days at all.
func parseAbsenceDates(raw string) (dateRange, bool) {
	tokens := dateTokenRegex.FindAllString(raw, -1)
	if len(tokens) == 0 {
		return dateRange{}, false
	}

	start, ok := parseDateToken(tokens[0])
	if !ok {
		return dateRange{}, false
	}
	end := start
	if len(tokens) > 1 {
		end, ok = parseDateToken(tokens[len(tokens)-1])
		if !ok {
			return dateRange{}, false
		}
	}

	if end.Before(start) {
		return dateRange{}, false
	}
	return dateRange{Start: start, End: end}, true
}

func parseDateToken(token string) (time.Time, bool) {
	for _, layout := range dateTokenLayouts {
		if t, err := time.ParseInLocation(layout, token, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
