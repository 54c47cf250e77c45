package roster

import "context"

// RosterRepository defines data access for monthly rosters. Rosters
// are produced by a separate scheduling workflow and read-only here.
type RosterRepository interface {
	// ListByMonths retrieves every roster whose normalized month key
	// is in monthKeys (ISO YYYY-MM).
	ListByMonths(ctx context.Context, monthKeys []string) ([]MonthlyRoster, error)
}
