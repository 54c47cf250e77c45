package schedule

import (
	"context"
	"time"
)

// TemplateRepository defines data access for weekly schedule
// templates.
type TemplateRepository interface {
	// ListActiveInRange retrieves every template whose validity range
	// overlaps [from, to].
	ListActiveInRange(ctx context.Context, from, to time.Time) ([]WeeklyTemplate, error)
}
