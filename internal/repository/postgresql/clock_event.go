package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) clockevent.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// ListInRange implements clockevent.ClockEventRepository.
func (c *clockEventRepository) ListInRange(ctx context.Context, from, to time.Time) ([]clockevent.ClockEvent, error) {
	q := GetQuerier(ctx, c.db)

	// duration_minutes comes from the terminal export as text and is
	// parsed fail-open downstream.
	query := `
		SELECT employee_code, event_date, duration_minutes
		FROM clock_events
		WHERE event_date BETWEEN $1 AND $2
		ORDER BY employee_code, event_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	var events []clockevent.ClockEvent
	for rows.Next() {
		var ev clockevent.ClockEvent
		if err := rows.Scan(&ev.EmployeeCode, &ev.Date, &ev.DurationMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clock events: %w", err)
	}

	return events, nil
}
