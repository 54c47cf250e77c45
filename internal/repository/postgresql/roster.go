package postgresql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type rosterRepository struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepository{db: db}
}

// spanishMonths maps the month names the scheduling workflow writes
// into the month_label column. Labels are stored interchangeably as
// names or numbers; both normalize to the same month ordinal here,
// once, at the data-access boundary.
var spanishMonths = map[string]int{
	"ENERO":      1,
	"FEBRERO":    2,
	"MARZO":      3,
	"ABRIL":      4,
	"MAYO":       5,
	"JUNIO":      6,
	"JULIO":      7,
	"AGOSTO":     8,
	"SEPTIEMBRE": 9,
	"OCTUBRE":    10,
	"NOVIEMBRE":  11,
	"DICIEMBRE":  12,
}

// normalizeMonthLabel resolves a raw month label ("ENERO", "1", "01")
// to its month ordinal.
func normalizeMonthLabel(label string) (int, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(label))
	if m, ok := spanishMonths[trimmed]; ok {
		return m, true
	}
	if m, err := strconv.Atoi(trimmed); err == nil && m >= 1 && m <= 12 {
		return m, true
	}
	return 0, false
}

// ListByMonths implements roster.RosterRepository.
func (r *rosterRepository) ListByMonths(ctx context.Context, monthKeys []string) ([]roster.MonthlyRoster, error) {
	q := GetQuerier(ctx, r.db)

	wanted := make(map[string]struct{}, len(monthKeys))
	years := make([]int, 0, len(monthKeys))
	seenYears := make(map[int]struct{})
	for _, key := range monthKeys {
		wanted[key] = struct{}{}
		if len(key) >= 4 {
			if year, err := strconv.Atoi(key[:4]); err == nil {
				if _, ok := seenYears[year]; !ok {
					seenYears[year] = struct{}{}
					years = append(years, year)
				}
			}
		}
	}

	dayCols := make([]string, 0, 31)
	for d := 1; d <= 31; d++ {
		dayCols = append(dayCols, fmt.Sprintf("day_%d", d))
	}

	// The month label cannot be normalized in SQL, so rosters are
	// fetched per year and filtered after normalization.
	query := fmt.Sprintf(`
		SELECT employee_code, year, month_label, work_center, %s
		FROM rosters
		WHERE year = ANY($1)
		ORDER BY employee_code
	`, strings.Join(dayCols, ", "))

	rows, err := q.Query(ctx, query, years)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	defer rows.Close()

	var rosters []roster.MonthlyRoster
	for rows.Next() {
		var (
			entry      roster.MonthlyRoster
			year       int
			monthLabel string
			days       [31]*string
		)

		dest := []any{&entry.EmployeeCode, &year, &monthLabel, &entry.WorkCenter}
		for i := range days {
			dest = append(dest, &days[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan roster: %w", err)
		}

		month, ok := normalizeMonthLabel(monthLabel)
		if !ok {
			// A label that is neither a month name nor a number names
			// no month; the row cannot belong to any requested period.
			continue
		}
		entry.MonthKey = fmt.Sprintf("%04d-%02d", year, month)
		if _, ok := wanted[entry.MonthKey]; !ok {
			continue
		}

		for i, cell := range days {
			if cell != nil {
				entry.Days[i] = *cell
			}
		}
		rosters = append(rosters, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rosters: %w", err)
	}

	return rosters, nil
}
