package recon

import (
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/shopspring/decimal"
)

// planResult is one day's resolved plan: the hours the employee was
// scheduled to work and the single source that decided them.
type planResult struct {
	Hours  decimal.Decimal
	Source recon.PlanSource
}

// resolveFunc is one strategy of the precedence chain. It reports
// matched=false when the strategy has nothing to say about the day, in
// which case the next strategy in the chain is consulted.
type resolveFunc func(emp employee.Employee, date time.Time) (planResult, bool)

// planner resolves the daily plan for employees against one dataset.
// The precedence order is the chain slice and nothing else: sick leave
// overrides vacation overrides holiday overrides other absences
// overrides the roster overrides the weekly template. First match
// wins; a matched zero-hours source fully suppresses roster and
// template hours for that day.
type planner struct {
	data *dataset
	log  *slog.Logger

	// defaultRegion classifies every employee for regional holidays.
	defaultRegion string
	// collapseMinutes is the triple-window collapse threshold.
	collapseMinutes int
	// bareNumberCells enables the legacy bare-decimal roster encoding
	// used only by annual-period rosters.
	bareNumberCells bool

	chain []resolveFunc
}

func newPlanner(data *dataset, defaultRegion string, collapseMinutes int, bareNumberCells bool, logger *slog.Logger) *planner {
	p := &planner{
		data:            data,
		log:             logger,
		defaultRegion:   defaultRegion,
		collapseMinutes: collapseMinutes,
		bareNumberCells: bareNumberCells,
	}
	p.chain = []resolveFunc{
		p.resolveSickLeave,
		p.resolveVacation,
		p.resolveHoliday,
		p.resolveOtherAbsence,
		p.resolveRoster,
		p.resolveTemplate,
	}
	return p
}

// PlanFor resolves one employee-day through the precedence chain.
func (p *planner) PlanFor(emp employee.Employee, date time.Time) planResult {
	for _, resolve := range p.chain {
		if result, ok := resolve(emp, date); ok {
			return result
		}
	}
	return planResult{Hours: decimal.Zero, Source: recon.SourceNone}
}

func (p *planner) resolveSickLeave(emp employee.Employee, date time.Time) (planResult, bool) {
	for _, s := range p.data.sickByEmployee[emp.Code] {
		if s.Covers(date, p.data.periodEnd) {
			return planResult{Hours: decimal.Zero, Source: recon.SourceSickLeave}, true
		}
	}
	return planResult{}, false
}

func (p *planner) resolveVacation(emp employee.Employee, date time.Time) (planResult, bool) {
	for _, a := range p.data.absencesByEmployee[emp.Code] {
		if a.Vacation && a.Range.Covers(date) {
			return planResult{Hours: decimal.Zero, Source: recon.SourceVacation}, true
		}
	}
	return planResult{}, false
}

func (p *planner) resolveHoliday(emp employee.Employee, date time.Time) (planResult, bool) {
	// Employees flagged to work on public holidays keep their normal
	// plan; the holiday never matches for them.
	if emp.WorksHolidays {
		return planResult{}, false
	}
	for _, h := range p.data.holidaysByDate[dateKeyOf(date)] {
		if h.AppliesTo(p.defaultRegion) {
			return planResult{Hours: decimal.Zero, Source: recon.SourceHoliday}, true
		}
	}
	return planResult{}, false
}

func (p *planner) resolveOtherAbsence(emp employee.Employee, date time.Time) (planResult, bool) {
	for _, a := range p.data.absencesByEmployee[emp.Code] {
		if !a.Vacation && a.Range.Covers(date) {
			return planResult{Hours: decimal.Zero, Source: recon.SourceAbsence}, true
		}
	}
	return planResult{}, false
}

func (p *planner) resolveRoster(emp employee.Employee, date time.Time) (planResult, bool) {
	cell, ok := p.data.rosterCell(emp.Code, date)
	if !ok {
		return planResult{}, false
	}

	code := parseShiftCode(cell, p.bareNumberCells)
	if !code.HasEntry {
		// An empty cell means "no roster for this day"; fall through
		// to the weekly template.
		return planResult{}, false
	}
	if !code.Recognized {
		p.log.Warn("unrecognized roster shift code, defaulting to zero hours",
			slog.String("employee_code", emp.Code),
			slog.String("date", dateKeyOf(date)),
			slog.String("raw", cell),
		)
	}
	return planResult{Hours: code.Hours, Source: recon.SourceRoster}, true
}

func (p *planner) resolveTemplate(emp employee.Employee, date time.Time) (planResult, bool) {
	tpl, ok := p.data.activeTemplate(emp.WorkCenter, emp.Group, date)
	if !ok {
		return planResult{}, false
	}

	hours, recognized := templateDayHours(tpl, date, p.collapseMinutes)
	if !recognized {
		p.log.Warn("unparseable weekly template window, slot skipped",
			slog.String("employee_code", emp.Code),
			slog.String("date", dateKeyOf(date)),
			slog.String("template_id", tpl.ID),
		)
	}
	return planResult{Hours: hours, Source: recon.SourceTemplate}, true
}
