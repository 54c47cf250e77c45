package recon

import (
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/shopspring/decimal"
)

// periodTotals accumulates daily reconciliation results over one
// aggregation window (a month or a year).
type periodTotals struct {
	Plan       decimal.Decimal
	PlanToDate decimal.Decimal
	Actual     decimal.Decimal
	Ordinary   decimal.Decimal
	Excess     decimal.Decimal
	Counts     recon.DayCounts

	sawRoster   bool
	sawTemplate bool
}

// aggregateDays folds daily records into period totals. When todayKey
// is non-empty (month-to-date view of the current month) the plan-to-
// date sub-total only includes days up to and including today; days
// after today still contribute to the full totals and remain in the
// detail list. With an empty todayKey the plan-to-date equals the full
// plan.
func aggregateDays(days []recon.DailyRecord, todayKey string) periodTotals {
	t := periodTotals{
		Plan:       decimal.Zero,
		PlanToDate: decimal.Zero,
		Actual:     decimal.Zero,
		Ordinary:   decimal.Zero,
		Excess:     decimal.Zero,
	}

	for _, day := range days {
		t.Plan = t.Plan.Add(day.Plan)
		t.Actual = t.Actual.Add(day.Actual)
		t.Ordinary = t.Ordinary.Add(day.Ordinary)
		t.Excess = t.Excess.Add(day.Excess)

		if todayKey == "" || day.Date <= todayKey {
			t.PlanToDate = t.PlanToDate.Add(day.Plan)
		}

		switch day.PlanSource {
		case recon.SourceSickLeave:
			t.Counts.SickLeave++
		case recon.SourceVacation:
			t.Counts.Vacation++
		case recon.SourceAbsence:
			t.Counts.Absence++
		case recon.SourceHoliday:
			t.Counts.Holiday++
		case recon.SourceRoster:
			t.sawRoster = true
		case recon.SourceTemplate:
			t.sawTemplate = true
		}
	}

	return t
}

// merge folds another window into this one, keeping day counts and
// source sightings. Used by the annual path to combine twelve monthly
// aggregates.
func (t periodTotals) merge(other periodTotals) periodTotals {
	t.Plan = t.Plan.Add(other.Plan)
	t.PlanToDate = t.PlanToDate.Add(other.PlanToDate)
	t.Actual = t.Actual.Add(other.Actual)
	t.Ordinary = t.Ordinary.Add(other.Ordinary)
	t.Excess = t.Excess.Add(other.Excess)
	t.Counts.SickLeave += other.Counts.SickLeave
	t.Counts.Vacation += other.Counts.Vacation
	t.Counts.Absence += other.Counts.Absence
	t.Counts.Holiday += other.Counts.Holiday
	t.sawRoster = t.sawRoster || other.sawRoster
	t.sawTemplate = t.sawTemplate || other.sawTemplate
	return t
}

// dominantSource tags which plan source fed the window.
func (t periodTotals) dominantSource() string {
	switch {
	case t.sawRoster && t.sawTemplate:
		return recon.DominantMixed
	case t.sawRoster:
		return recon.DominantRoster
	case t.sawTemplate:
		return recon.DominantTemplate
	default:
		return ""
	}
}

// foldDominantSources rolls monthly dominant-source tags into one
// annual tag. Months that resolved from neither roster nor template
// are ignored; any disagreement between the remaining months, or any
// mixed month, makes the year mixed.
func foldDominantSources(monthly []string) string {
	annual := ""
	for _, tag := range monthly {
		if tag == "" {
			continue
		}
		if annual == "" {
			annual = tag
			continue
		}
		if annual != tag {
			return recon.DominantMixed
		}
	}
	return annual
}

// classifyOvertime re-buckets the window's total excess hours into
// complementary vs extraordinary using contract-type rules:
//
//   - part-time with contracted hours: hours beyond the plan count as
//     complementary up to the contracted base, the rest is
//     extraordinary;
//   - full-time with contracted hours: everything beyond the contract
//     is extraordinary;
//   - no contracted hours but a permitted ceiling for the group:
//     everything beyond the ceiling is extraordinary;
//   - otherwise the whole excess stays extraordinary, unclassified.
//
// The reported ordinary figure is what remains of the actual hours
// once both overtime buckets are taken out; it may legitimately differ
// from the sum of per-day ordinary values, which is only a provisional
// split.
func classifyOvertime(emp employee.Employee, totals periodTotals, permitted *decimal.Decimal) (complementary, extraordinary, ordinary decimal.Decimal) {
	complementary = decimal.Zero
	extraordinary = decimal.Zero

	contracted := emp.ContractedHours
	switch {
	case contracted.Sign() > 0 && emp.ContractType() == employee.ContractPartTime:
		headroom := decimal.Max(decimal.Zero, contracted.Sub(totals.Plan))
		complementary = decimal.Min(totals.Excess, headroom)
		extraordinary = decimal.Max(decimal.Zero, totals.Excess.Sub(complementary))
	case contracted.Sign() > 0:
		extraordinary = decimal.Max(decimal.Zero, totals.Actual.Sub(contracted))
	case permitted != nil:
		extraordinary = decimal.Max(decimal.Zero, totals.Actual.Sub(*permitted))
	default:
		extraordinary = totals.Excess
	}

	ordinary = totals.Actual.Sub(complementary).Sub(extraordinary)
	return complementary, extraordinary, ordinary
}

// buildTotals finalizes one window into the response totals shape.
func buildTotals(emp employee.Employee, totals periodTotals, permitted *decimal.Decimal) recon.PeriodTotals {
	complementary, extraordinary, ordinary := classifyOvertime(emp, totals, permitted)

	return recon.PeriodTotals{
		Plan:          totals.Plan.Round(2),
		PlanToDate:    totals.PlanToDate.Round(2),
		Actual:        totals.Actual.Round(2),
		Ordinary:      ordinary.Round(2),
		Complementary: complementary.Round(2),
		Extraordinary: extraordinary.Round(2),
		Permitted:     permitted,
	}
}
