package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type templateRepository struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) schedule.TemplateRepository {
	return &templateRepository{db: db}
}

// ListActiveInRange implements schedule.TemplateRepository.
func (t *templateRepository) ListActiveInRange(ctx context.Context, from, to time.Time) ([]schedule.WeeklyTemplate, error) {
	q := GetQuerier(ctx, t.db)

	// One weekday row per template per day of week; start/end marker
	// columns hold "HH:MM" strings, NULL when the slot is unused.
	query := `
		SELECT st.id, st.work_center, st.group_name, st.valid_from, st.valid_until,
			   stt.day_of_week,
			   stt.start_1, stt.end_1, stt.start_2, stt.end_2, stt.start_3, stt.end_3
		FROM schedule_templates st
		JOIN schedule_template_times stt ON stt.template_id = st.id
		WHERE st.valid_from <= $2
		  AND (st.valid_until IS NULL OR st.valid_until >= $1)
		ORDER BY st.id, stt.day_of_week
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule templates: %w", err)
	}
	defer rows.Close()

	var (
		templates []schedule.WeeklyTemplate
		current   *schedule.WeeklyTemplate
	)

	for rows.Next() {
		var (
			id         string
			workCenter string
			groupName  string
			validFrom  time.Time
			validUntil *time.Time
			dayOfWeek  int
			markers    [6]*string
		)

		if err := rows.Scan(
			&id, &workCenter, &groupName, &validFrom, &validUntil,
			&dayOfWeek,
			&markers[0], &markers[1], &markers[2], &markers[3], &markers[4], &markers[5],
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule template: %w", err)
		}

		if current == nil || current.ID != id {
			templates = append(templates, schedule.WeeklyTemplate{
				ID:         id,
				WorkCenter: workCenter,
				Group:      groupName,
				ValidFrom:  validFrom,
				ValidUntil: validUntil,
			})
			current = &templates[len(templates)-1]
		}

		// day_of_week follows ISO numbering: 1 (Monday) to 7 (Sunday).
		if dayOfWeek < 1 || dayOfWeek > 7 {
			continue
		}
		for slot := 0; slot < 3; slot++ {
			window := schedule.TimeWindow{}
			if markers[slot*2] != nil {
				window.Start = *markers[slot*2]
			}
			if markers[slot*2+1] != nil {
				window.End = *markers[slot*2+1]
			}
			current.Windows[dayOfWeek-1][slot] = window
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedule templates: %w", err)
	}

	return templates, nil
}
