package clockevent

import (
	"context"
	"time"
)

// ClockEventRepository defines data access for raw attendance punches.
type ClockEventRepository interface {
	// ListInRange retrieves every event dated inside [from, to].
	ListInRange(ctx context.Context, from, to time.Time) ([]ClockEvent, error)
}
