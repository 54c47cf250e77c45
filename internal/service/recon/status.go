package recon

import (
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/shopspring/decimal"
)

// classifyStatus produces the three independent exception flags for
// one employee's window. Each flag compares an actual figure against
// its plan figure with a fixed tolerance that absorbs rounding noise.
// The plan-to-date flag only applies to the current month; every other
// window reports it as not applicable.
func classifyStatus(totals periodTotals, permitted *decimal.Decimal, currentMonth bool, tolerance decimal.Decimal) recon.StatusFlags {
	flags := recon.StatusFlags{
		PlanToDate: recon.StatusNotApplicable,
		Plan:       recon.StatusOK,
		Permitted:  recon.StatusNotApplicable,
	}

	if currentMonth {
		flags.PlanToDate = recon.StatusOK
		if totals.Actual.Sub(totals.PlanToDate).GreaterThan(tolerance) {
			flags.PlanToDate = recon.StatusExceeded
		}
	}

	if totals.Actual.Sub(totals.Plan).GreaterThan(tolerance) {
		flags.Plan = recon.StatusExceeded
	}

	if permitted != nil {
		flags.Permitted = recon.StatusOK
		if totals.Actual.Sub(*permitted).GreaterThan(tolerance) {
			flags.Permitted = recon.StatusExceeded
		}
	}

	return flags
}
