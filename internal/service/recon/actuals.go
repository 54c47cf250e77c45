package recon

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// actualsFor sums the recorded clock-event durations of one
// employee-day into worked hours. Null, blank, zero and malformed
// durations are skipped; when events exist but none contributed a
// usable duration the day is flagged incomplete (typically a punch-in
// without its punch-out).
func (p *planner) actualsFor(code string, date time.Time) (decimal.Decimal, bool) {
	events := p.data.eventsByEmployee[code][dateKeyOf(date)]
	if len(events) == 0 {
		return decimal.Zero, false
	}

	totalMinutes := decimal.Zero
	for _, e := range events {
		if e.DurationMinutes == nil || strings.TrimSpace(*e.DurationMinutes) == "" {
			continue
		}
		minutes, err := parseDecimal(strings.TrimSpace(*e.DurationMinutes))
		if err != nil {
			p.log.Warn("malformed clock-event duration skipped",
				slog.String("employee_code", code),
				slog.String("date", dateKeyOf(date)),
				slog.String("raw", *e.DurationMinutes),
			)
			continue
		}
		if minutes.Sign() <= 0 {
			continue
		}
		totalMinutes = totalMinutes.Add(minutes)
	}

	hours := totalMinutes.Div(sixty).Round(2)
	incomplete := hours.IsZero()
	return hours, incomplete
}
