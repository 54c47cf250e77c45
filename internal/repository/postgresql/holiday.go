package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListInRange implements holiday.HolidayRepository.
func (h *holidayRepository) ListInRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT name, date, observed_date, scope, region, active
		FROM holidays
		WHERE active = TRUE
		  AND COALESCE(observed_date, date) BETWEEN $1 AND $2
		ORDER BY COALESCE(observed_date, date)
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.Name, &hol.Date, &hol.ObservedDate, &hol.Scope, &hol.Region, &hol.Active); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}
