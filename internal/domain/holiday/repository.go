package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the holiday calendar.
type HolidayRepository interface {
	// ListInRange retrieves active holidays whose effective date falls
	// inside [from, to].
	ListInRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
