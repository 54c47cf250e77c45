package recon

import (
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/schedule"
)

type templateKey struct {
	WorkCenter string
	Group      string
}

// parsedAbsence is an absence record with its free-text dates already
// resolved. Records whose text yielded no dates are dropped before
// they reach the dataset.
type parsedAbsence struct {
	Range    dateRange
	Vacation bool
}

// dataset is the in-memory working set for one engine invocation. It
// is assembled once from the bulk reads and only read afterwards, so
// per-employee workers can share it without locking: every employee's
// rows are disjoint from every other employee's.
type dataset struct {
	periodEnd time.Time

	holidaysByDate map[string][]holiday.Holiday
	templatesByKey map[templateKey][]schedule.WeeklyTemplate

	rostersByEmployee  map[string]map[string]roster.MonthlyRoster
	sickByEmployee     map[string][]absence.SickLeave
	absencesByEmployee map[string][]parsedAbsence
	eventsByEmployee   map[string]map[string][]clockevent.ClockEvent
	permittedByGroup   map[string]recon.PermittedHours
}

func newDataset(
	periodEnd time.Time,
	rosters []roster.MonthlyRoster,
	templates []schedule.WeeklyTemplate,
	holidays []holiday.Holiday,
	sickLeaves []absence.SickLeave,
	absences []absence.Absence,
	events []clockevent.ClockEvent,
	permitted []recon.PermittedHours,
	logger *slog.Logger,
) *dataset {
	d := &dataset{
		periodEnd:          periodEnd,
		holidaysByDate:     make(map[string][]holiday.Holiday),
		templatesByKey:     make(map[templateKey][]schedule.WeeklyTemplate),
		rostersByEmployee:  make(map[string]map[string]roster.MonthlyRoster),
		sickByEmployee:     make(map[string][]absence.SickLeave),
		absencesByEmployee: make(map[string][]parsedAbsence),
		eventsByEmployee:   make(map[string]map[string][]clockevent.ClockEvent),
		permittedByGroup:   make(map[string]recon.PermittedHours),
	}

	for _, h := range holidays {
		key := dateKeyOf(h.EffectiveDate())
		d.holidaysByDate[key] = append(d.holidaysByDate[key], h)
	}

	for _, t := range templates {
		key := templateKey{WorkCenter: t.WorkCenter, Group: t.Group}
		d.templatesByKey[key] = append(d.templatesByKey[key], t)
	}

	for _, r := range rosters {
		byMonth, ok := d.rostersByEmployee[r.EmployeeCode]
		if !ok {
			byMonth = make(map[string]roster.MonthlyRoster)
			d.rostersByEmployee[r.EmployeeCode] = byMonth
		}
		byMonth[r.MonthKey] = r
	}

	for _, s := range sickLeaves {
		d.sickByEmployee[s.EmployeeCode] = append(d.sickByEmployee[s.EmployeeCode], s)
	}

	for _, a := range absences {
		rng, ok := parseAbsenceDates(a.RawDates)
		if !ok {
			logger.Warn("absence date range unparseable, record matches no days",
				slog.String("employee_code", a.EmployeeCode),
				slog.String("raw_dates", a.RawDates),
			)
			continue
		}
		d.absencesByEmployee[a.EmployeeCode] = append(d.absencesByEmployee[a.EmployeeCode], parsedAbsence{
			Range:    rng,
			Vacation: a.IsVacation(),
		})
	}

	for _, e := range events {
		byDate, ok := d.eventsByEmployee[e.EmployeeCode]
		if !ok {
			byDate = make(map[string][]clockevent.ClockEvent)
			d.eventsByEmployee[e.EmployeeCode] = byDate
		}
		key := dateKeyOf(e.Date)
		byDate[key] = append(byDate[key], e)
	}

	for _, p := range permitted {
		d.permittedByGroup[p.Group] = p
	}

	return d
}

// rosterCell returns the raw roster cell for one employee and date,
// with ok=false when no roster row exists for that month at all.
func (d *dataset) rosterCell(code string, date time.Time) (string, bool) {
	byMonth, ok := d.rostersByEmployee[code]
	if !ok {
		return "", false
	}
	r, ok := byMonth[monthKeyOf(date)]
	if !ok {
		return "", false
	}
	return r.Day(date.Day()), true
}

// activeTemplate returns the weekly template valid on date for a
// (work center, group) pair. With versioned templates at most one
// validity range covers any date; the first match wins.
func (d *dataset) activeTemplate(center, group string, date time.Time) (schedule.WeeklyTemplate, bool) {
	for _, t := range d.templatesByKey[templateKey{WorkCenter: center, Group: group}] {
		if t.ActiveOn(date) {
			return t, true
		}
	}
	return schedule.WeeklyTemplate{}, false
}

// permittedFor returns the permitted-hours ceiling for a group.
func (d *dataset) permittedFor(group string) (recon.PermittedHours, bool) {
	p, ok := d.permittedByGroup[group]
	return p, ok
}
