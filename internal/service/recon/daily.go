package recon

import (
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/shopspring/decimal"
)

// reconcileDay combines one day's resolved plan with its recorded
// actuals. The split is provisional: ordinary never exceeds the plan,
// excess is never negative, and ordinary + excess always equals the
// actual hours. The period aggregator re-buckets total excess into
// complementary/extraordinary later.
func (p *planner) reconcileDay(emp employee.Employee, date time.Time) recon.DailyRecord {
	plan := p.PlanFor(emp, date)
	actual, incomplete := p.actualsFor(emp.Code, date)

	ordinary := decimal.Min(actual, plan.Hours)
	excess := decimal.Max(decimal.Zero, actual.Sub(plan.Hours))

	return recon.DailyRecord{
		Date:       dateKeyOf(date),
		Plan:       plan.Hours,
		PlanSource: plan.Source,
		Actual:     actual,
		Delta:      actual.Sub(plan.Hours),
		Incomplete: incomplete,
		Ordinary:   ordinary,
		Excess:     excess,
	}
}
