package holiday

import "time"

// Scope tells whether a holiday applies nationwide or to one region.
type Scope string

const (
	ScopeNational Scope = "national"
	ScopeRegional Scope = "regional"
)

type Holiday struct {
	Name         string
	Date         time.Time
	ObservedDate *time.Time
	Scope        Scope
	Region       string
	Active       bool
}

// EffectiveDate returns the observed date when the holiday was moved,
// otherwise the calendar date.
func (h Holiday) EffectiveDate() time.Time {
	if h.ObservedDate != nil {
		return *h.ObservedDate
	}
	return h.Date
}

// AppliesTo reports whether the holiday applies to the given region.
// National holidays always apply; regional ones only on a region match.
func (h Holiday) AppliesTo(region string) bool {
	if !h.Active {
		return false
	}
	if h.Scope == ScopeNational {
		return true
	}
	return h.Region == region
}
