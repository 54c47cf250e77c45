package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type sickLeaveRepository struct {
	db *database.DB
}

func NewSickLeaveRepository(db *database.DB) absence.SickLeaveRepository {
	return &sickLeaveRepository{db: db}
}

// ListOverlapping implements absence.SickLeaveRepository.
func (s *sickLeaveRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]absence.SickLeave, error) {
	q := GetQuerier(ctx, s.db)

	// Open-ended cases have no end date and overlap every period from
	// their start onward.
	query := `
		SELECT employee_code, start_date, end_date
		FROM sick_leaves
		WHERE start_date <= $2
		  AND (end_date IS NULL OR end_date >= $1)
		ORDER BY employee_code, start_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sick leaves: %w", err)
	}
	defer rows.Close()

	var cases []absence.SickLeave
	for rows.Next() {
		var c absence.SickLeave
		if err := rows.Scan(&c.EmployeeCode, &c.StartDate, &c.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan sick leave: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sick leaves: %w", err)
	}

	return cases, nil
}
