package recon

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func rosterWithDay(code, monthKey string, day int, cell string) roster.MonthlyRoster {
	r := roster.MonthlyRoster{EmployeeCode: code, MonthKey: monthKey, WorkCenter: "CENTRO-1"}
	r.Days[day-1] = cell
	return r
}

func weekdayTemplate(center, group string, from time.Time) schedule.WeeklyTemplate {
	tpl := schedule.WeeklyTemplate{
		ID:         "TPL-1",
		WorkCenter: center,
		Group:      group,
		ValidFrom:  from,
	}
	for weekday := 0; weekday < 5; weekday++ {
		tpl.Windows[weekday][0] = schedule.TimeWindow{Start: "09:00", End: "17:00"}
	}
	return tpl
}

func TestPlanFor_SickLeaveOverridesRoster(t *testing.T) {
	t.Parallel()

	emp := testEmployee("E001")
	date := mustDate(t, "2025-06-10")
	end := mustDate(t, "2025-06-12")

	f := &fixture{
		periodEnd: mustDate(t, "2025-06-30"),
		rosters:   []roster.MonthlyRoster{rosterWithDay("E001", "2025-06", 10, "08:00-16:00")},
		sickLeaves: []absence.SickLeave{
			{EmployeeCode: "E001", StartDate: date.AddDate(0, 0, -2), EndDate: &end},
		},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(emp, date)
	assert.Equal(t, recon.SourceSickLeave, got.Source)
	assert.True(t, got.Hours.IsZero())
}

func TestPlanFor_OpenEndedSickLeaveRunsThroughPeriodEnd(t *testing.T) {
	t.Parallel()

	emp := testEmployee("E001")
	f := &fixture{
		periodEnd: mustDate(t, "2025-06-30"),
		sickLeaves: []absence.SickLeave{
			{EmployeeCode: "E001", StartDate: mustDate(t, "2025-06-05")},
		},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(emp, mustDate(t, "2025-06-28"))
	assert.Equal(t, recon.SourceSickLeave, got.Source)

	got = p.PlanFor(emp, mustDate(t, "2025-06-04"))
	assert.Equal(t, recon.SourceNone, got.Source)
}

func TestPlanFor_VacationBeforeHoliday(t *testing.T) {
	t.Parallel()

	emp := testEmployee("E001")
	date := mustDate(t, "2025-08-15")

	f := &fixture{
		periodEnd: mustDate(t, "2025-08-31"),
		holidays: []holiday.Holiday{
			{Name: "Asuncion", Date: date, Scope: holiday.ScopeNational, Active: true},
		},
		absences: []absence.Absence{
			{EmployeeCode: "E001", Type: "Vacaciones", RawDates: "10/08/2025 - 20/08/2025"},
		},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(emp, date)
	assert.Equal(t, recon.SourceVacation, got.Source)
}

func TestPlanFor_HolidayScope(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "2025-05-02")
	f := &fixture{
		periodEnd: mustDate(t, "2025-05-31"),
		holidays: []holiday.Holiday{
			{Name: "Fiesta regional", Date: date, Scope: holiday.ScopeRegional, Region: "MAD", Active: true},
		},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(testEmployee("E001"), date)
	assert.Equal(t, recon.SourceHoliday, got.Source)

	// A different default region never matches a regional entry.
	other := f.planner(t, "CAT", false)
	got = other.PlanFor(testEmployee("E001"), date)
	assert.Equal(t, recon.SourceNone, got.Source)
}

func TestPlanFor_WorksHolidaysKeepsRosterPlan(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "2025-12-25")
	f := &fixture{
		periodEnd: mustDate(t, "2025-12-31"),
		holidays: []holiday.Holiday{
			{Name: "Navidad", Date: date, Scope: holiday.ScopeNational, Active: true},
		},
		rosters: []roster.MonthlyRoster{rosterWithDay("E001", "2025-12", 25, "22:00-06:00")},
	}
	p := f.planner(t, "MAD", false)

	emp := testEmployee("E001")
	emp.WorksHolidays = true

	got := p.PlanFor(emp, date)
	assert.Equal(t, recon.SourceRoster, got.Source)
	assert.True(t, got.Hours.Equal(mustDecimal(t, "8")))
}

func TestPlanFor_ObservedDateOverride(t *testing.T) {
	t.Parallel()

	observed := mustDate(t, "2025-05-05")
	f := &fixture{
		periodEnd: mustDate(t, "2025-05-31"),
		holidays: []holiday.Holiday{
			{Name: "Trasladado", Date: mustDate(t, "2025-05-03"), ObservedDate: &observed, Scope: holiday.ScopeNational, Active: true},
		},
	}
	p := f.planner(t, "MAD", false)

	assert.Equal(t, recon.SourceHoliday, p.PlanFor(testEmployee("E001"), observed).Source)
	assert.Equal(t, recon.SourceNone, p.PlanFor(testEmployee("E001"), mustDate(t, "2025-05-03")).Source)
}

func TestPlanFor_OtherAbsenceOverridesRoster(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "2025-09-17")
	f := &fixture{
		periodEnd: mustDate(t, "2025-09-30"),
		rosters:   []roster.MonthlyRoster{rosterWithDay("E001", "2025-09", 17, "8h")},
		absences: []absence.Absence{
			{EmployeeCode: "E001", Type: "Permiso sin sueldo", RawDates: "17/09/2025"},
		},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(testEmployee("E001"), date)
	assert.Equal(t, recon.SourceAbsence, got.Source)
	assert.True(t, got.Hours.IsZero())
}

func TestPlanFor_MalformedAbsenceMatchesNoDays(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "2025-09-17")
	f := &fixture{
		periodEnd: mustDate(t, "2025-09-30"),
		rosters:   []roster.MonthlyRoster{rosterWithDay("E001", "2025-09", 17, "8h")},
		absences: []absence.Absence{
			{EmployeeCode: "E001", Type: "Permiso", RawDates: "mediados de septiembre"},
		},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(testEmployee("E001"), date)
	assert.Equal(t, recon.SourceRoster, got.Source)
	assert.True(t, got.Hours.Equal(mustDecimal(t, "8")))
}

func TestPlanFor_OffDutyRosterCellStillCountsAsRoster(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "2025-06-02")
	f := &fixture{
		periodEnd: mustDate(t, "2025-06-30"),
		rosters:   []roster.MonthlyRoster{rosterWithDay("E001", "2025-06", 2, "LIBRE")},
		templates: []schedule.WeeklyTemplate{weekdayTemplate("CENTRO-1", "G1", mustDate(t, "2025-01-01"))},
	}
	p := f.planner(t, "MAD", false)

	// An explicit day-off marker is a roster entry with zero hours.
	got := p.PlanFor(testEmployee("E001"), date)
	assert.Equal(t, recon.SourceRoster, got.Source)
	assert.True(t, got.Hours.IsZero())
}

func TestPlanFor_EmptyRosterCellFallsThroughToTemplate(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "2025-06-02")
	f := &fixture{
		periodEnd: mustDate(t, "2025-06-30"),
		rosters:   []roster.MonthlyRoster{rosterWithDay("E001", "2025-06", 3, "8h")},
		templates: []schedule.WeeklyTemplate{weekdayTemplate("CENTRO-1", "G1", mustDate(t, "2025-01-01"))},
	}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(testEmployee("E001"), date)
	assert.Equal(t, recon.SourceTemplate, got.Source)
	assert.True(t, got.Hours.Equal(mustDecimal(t, "8")))
}

func TestPlanFor_TemplateValidityVersioning(t *testing.T) {
	t.Parallel()

	until := mustDate(t, "2025-05-31")
	old := weekdayTemplate("CENTRO-1", "G1", mustDate(t, "2024-01-01"))
	old.ID = "TPL-OLD"
	old.ValidUntil = &until
	for weekday := 0; weekday < 5; weekday++ {
		old.Windows[weekday][0] = schedule.TimeWindow{Start: "08:00", End: "14:00"}
	}

	current := weekdayTemplate("CENTRO-1", "G1", mustDate(t, "2025-06-01"))

	f := &fixture{
		periodEnd: mustDate(t, "2025-06-30"),
		templates: []schedule.WeeklyTemplate{old, current},
	}
	p := f.planner(t, "MAD", false)

	// Monday under the old template.
	got := p.PlanFor(testEmployee("E001"), mustDate(t, "2025-05-26"))
	assert.Equal(t, recon.SourceTemplate, got.Source)
	assert.True(t, got.Hours.Equal(mustDecimal(t, "6")))

	// Monday under the replacement.
	got = p.PlanFor(testEmployee("E001"), mustDate(t, "2025-06-02"))
	assert.True(t, got.Hours.Equal(mustDecimal(t, "8")))
}

func TestPlanFor_NoSourceAtAll(t *testing.T) {
	t.Parallel()

	f := &fixture{periodEnd: mustDate(t, "2025-06-30")}
	p := f.planner(t, "MAD", false)

	got := p.PlanFor(testEmployee("E001"), mustDate(t, "2025-06-02"))
	assert.Equal(t, recon.SourceNone, got.Source)
	assert.True(t, got.Hours.IsZero())
}

func TestPlanFor_TemplateWeekendHasNoWindows(t *testing.T) {
	t.Parallel()

	f := &fixture{
		periodEnd: mustDate(t, "2025-06-30"),
		templates: []schedule.WeeklyTemplate{weekdayTemplate("CENTRO-1", "G1", mustDate(t, "2025-01-01"))},
	}
	p := f.planner(t, "MAD", false)

	// Saturday: template is active but plans zero hours.
	got := p.PlanFor(testEmployee("E001"), mustDate(t, "2025-06-07"))
	assert.Equal(t, recon.SourceTemplate, got.Source)
	assert.True(t, got.Hours.IsZero())
}
