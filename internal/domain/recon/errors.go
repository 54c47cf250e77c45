package recon

import "errors"

// Reconciliation domain errors
var (
	// ErrInvalidPeriod rejects a malformed month or year key before
	// any data access.
	ErrInvalidPeriod = errors.New("invalid period key")
)
