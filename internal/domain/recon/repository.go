package recon

import "context"

// PermittedHoursRepository defines data access for the permitted-hours
// reference table.
type PermittedHoursRepository interface {
	// ListAll retrieves the ceiling for every group.
	ListAll(ctx context.Context) ([]PermittedHours, error)
}
