package recon

import "github.com/shopspring/decimal"

// PermittedHours is the group-level administrative ceiling on worked
// hours, independent of individual contracts.
type PermittedHours struct {
	Group        string
	MonthlyHours decimal.Decimal
	AnnualHours  decimal.Decimal
}

// PlanSource tags where a day's planned hours came from. Exactly one
// source is assigned per day; sources are never blended.
type PlanSource string

const (
	SourceSickLeave PlanSource = "sick_leave"
	SourceVacation  PlanSource = "vacation"
	SourceHoliday   PlanSource = "holiday"
	SourceAbsence   PlanSource = "absence"
	SourceRoster    PlanSource = "roster"
	SourceTemplate  PlanSource = "template"
	SourceNone      PlanSource = "none"
)

// Status is one exception flag value.
type Status string

const (
	StatusOK            Status = "ok"
	StatusExceeded      Status = "exceeded"
	StatusNotApplicable Status = "n/a"
)

// Dominant plan-source classification for a month or a year.
const (
	DominantRoster   = "roster"
	DominantTemplate = "template"
	DominantMixed    = "mixed"
)
