package recon

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 1440

var sixty = decimal.NewFromInt(60)

// offDutyCodes is the fixed vocabulary of explicit day-off markers
// found in roster cells. Any of these counts as a real entry with zero
// planned hours, unlike an empty cell.
var offDutyCodes = map[string]struct{}{
	"LIBRE":      {},
	"DESCANSO":   {},
	"FESTIVO":    {},
	"VACACIONES": {},
	"BAJA":       {},
	"NO TRABAJA": {},
}

var (
	timeRangeRegex  = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)
	shiftCountRegex = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*h\s*\(\s*(\d+)\s*[x×]\s*(\d+(?:[.,]\d+)?)\s*h\s*\)$`)
	plainHoursRegex = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*h$`)
	bareNumberRegex = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
)

// shiftCode is the outcome of decoding one raw roster cell.
type shiftCode struct {
	Hours decimal.Decimal
	// HasEntry is false only for empty or whitespace-only cells. An
	// explicit day-off marker still counts as an entry.
	HasEntry bool
	// Recognized is false when a non-empty cell matched no known
	// encoding and fail-opened to zero hours.
	Recognized bool
}

// parseShiftCode decodes one raw roster cell into an hour value.
// Encodings are tried in a fixed order: off-duty vocabulary, textual
// time range (last range wins when several are chained with "/" or a
// space), "<N>h (<K>x<M>h)" shift-count shorthand (the per-shift M is
// the value that counts), "<N>h" shorthand and, only when
// allowBareNumber is set (legacy annual rosters), a bare decimal.
// Anything else yields zero hours so one bad cell never blocks the
// rest of the computation.
func parseShiftCode(raw string, allowBareNumber bool) shiftCode {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return shiftCode{Hours: decimal.Zero, HasEntry: false, Recognized: true}
	}

	if _, ok := offDutyCodes[strings.ToUpper(trimmed)]; ok {
		return shiftCode{Hours: decimal.Zero, HasEntry: true, Recognized: true}
	}

	if ranges := timeRangeRegex.FindAllStringSubmatch(trimmed, -1); len(ranges) > 0 {
		last := ranges[len(ranges)-1]
		startH, _ := strconv.Atoi(last[1])
		startM, _ := strconv.Atoi(last[2])
		endH, _ := strconv.Atoi(last[3])
		endM, _ := strconv.Atoi(last[4])
		if startH < 24 && endH < 24 && startM < 60 && endM < 60 {
			minutes := rangeMinutes(startH*60+startM, endH*60+endM)
			return shiftCode{Hours: minutesToHours(minutes), HasEntry: true, Recognized: true}
		}
		return shiftCode{Hours: decimal.Zero, HasEntry: true, Recognized: false}
	}

	if m := shiftCountRegex.FindStringSubmatch(trimmed); m != nil {
		// The annotation "24h (3x8h)" means three reconciliation units
		// of eight hours; the per-shift value is the one that counts.
		if perShift, err := parseDecimal(m[3]); err == nil {
			return shiftCode{Hours: perShift.Round(2), HasEntry: true, Recognized: true}
		}
		return shiftCode{Hours: decimal.Zero, HasEntry: true, Recognized: false}
	}

	if m := plainHoursRegex.FindStringSubmatch(trimmed); m != nil {
		if hours, err := parseDecimal(m[1]); err == nil {
			return shiftCode{Hours: hours.Round(2), HasEntry: true, Recognized: true}
		}
		return shiftCode{Hours: decimal.Zero, HasEntry: true, Recognized: false}
	}

	if allowBareNumber && bareNumberRegex.MatchString(trimmed) {
		if hours, err := parseDecimal(trimmed); err == nil {
			return shiftCode{Hours: hours.Round(2), HasEntry: true, Recognized: true}
		}
	}

	return shiftCode{Hours: decimal.Zero, HasEntry: true, Recognized: false}
}

// rangeMinutes computes the span between two minute-of-day marks,
// wrapping past midnight so overnight shifts stay non-negative.
func rangeMinutes(start, end int) int {
	return ((end - start) + minutesPerDay) % minutesPerDay
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty).Round(2)
}

// parseDecimal accepts both "7.5" and the comma-separated "7,5" the
// source sheets use.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

// templateDayHours computes the planned hours a weekly template yields
// for one date. The three window slots of the weekday are summed; when
// the sum reaches collapseMinutes the slots were almost certainly
// entered as duplicates of one continuous long shift, so only the
// longest single window counts.
func templateDayHours(tpl schedule.WeeklyTemplate, date time.Time, collapseMinutes int) (decimal.Decimal, bool) {
	windows := tpl.WindowsFor(date)

	sum := 0
	max := 0
	recognized := true
	for _, w := range windows {
		if w.IsZero() {
			continue
		}
		minutes, ok := windowMinutes(w)
		if !ok {
			recognized = false
			continue
		}
		sum += minutes
		if minutes > max {
			max = minutes
		}
	}

	if sum >= collapseMinutes {
		return minutesToHours(max), recognized
	}
	return minutesToHours(sum), recognized
}

// windowMinutes computes the wrapped duration of one template window.
func windowMinutes(w schedule.TimeWindow) (int, bool) {
	start, ok := clockMinutes(w.Start)
	if !ok {
		return 0, false
	}
	end, ok := clockMinutes(w.End)
	if !ok {
		return 0, false
	}
	return rangeMinutes(start, end), true
}

// clockMinutes parses an "HH:MM" time-of-day marker into minutes since
// midnight.
func clockMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
