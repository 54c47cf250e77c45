package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// ListAll implements absence.AbsenceRepository. The date range lives
// in free text, so no period filter is possible at the SQL level.
func (a *absenceRepository) ListAll(ctx context.Context) ([]absence.Absence, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_code, absence_type, date_range_text
		FROM absences
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var rec absence.Absence
		if err := rows.Scan(&rec.EmployeeCode, &rec.Type, &rec.RawDates); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read absences: %w", err)
	}

	return absences, nil
}
