package absence

import (
	"context"
	"time"
)

// SickLeaveRepository defines data access for sick-leave cases.
type SickLeaveRepository interface {
	// ListOverlapping retrieves every case whose interval overlaps
	// [from, to], including open-ended cases started before to.
	ListOverlapping(ctx context.Context, from, to time.Time) ([]SickLeave, error)
}

// AbsenceRepository defines data access for free-text absence records.
// The date range lives in unstructured text, so the table cannot be
// filtered by period in SQL; callers fetch all rows and match dates
// after parsing.
type AbsenceRepository interface {
	ListAll(ctx context.Context) ([]Absence, error)
}
