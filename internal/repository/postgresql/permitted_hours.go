package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
)

type permittedHoursRepository struct {
	db *database.DB
}

func NewPermittedHoursRepository(db *database.DB) recon.PermittedHoursRepository {
	return &permittedHoursRepository{db: db}
}

// ListAll implements recon.PermittedHoursRepository.
func (p *permittedHoursRepository) ListAll(ctx context.Context) ([]recon.PermittedHours, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT group_name, monthly_hours, annual_hours
		FROM permitted_hours
		ORDER BY group_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list permitted hours: %w", err)
	}
	defer rows.Close()

	var ceilings []recon.PermittedHours
	for rows.Next() {
		var ph recon.PermittedHours
		if err := rows.Scan(&ph.Group, &ph.MonthlyHours, &ph.AnnualHours); err != nil {
			return nil, fmt.Errorf("failed to scan permitted hours: %w", err)
		}
		ceilings = append(ceilings, ph)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read permitted hours: %w", err)
	}

	return ceilings, nil
}
