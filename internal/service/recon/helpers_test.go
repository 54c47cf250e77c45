package recon

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }

// fixture accumulates raw source rows and builds a dataset/planner
// pair the way the service does after its bulk reads.
type fixture struct {
	periodEnd  time.Time
	rosters    []roster.MonthlyRoster
	templates  []schedule.WeeklyTemplate
	holidays   []holiday.Holiday
	sickLeaves []absence.SickLeave
	absences   []absence.Absence
	events     []clockevent.ClockEvent
	permitted  []recon.PermittedHours
}

func (f *fixture) planner(t *testing.T, region string, bareNumbers bool) *planner {
	t.Helper()
	data := newDataset(f.periodEnd, f.rosters, f.templates, f.holidays,
		f.sickLeaves, f.absences, f.events, f.permitted, testLogger())
	return newPlanner(data, region, 22*60, bareNumbers, testLogger())
}

func testEmployee(code string) employee.Employee {
	return employee.Employee{
		Code:          code,
		Name:          "Empleado " + code,
		Active:        true,
		ContractText:  "Jornada completa",
		WorkCenter:    "CENTRO-1",
		Group:         "G1",
		WorksHolidays: false,
	}
}
