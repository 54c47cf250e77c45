package recon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/config"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReconServiceImpl struct {
	employee.EmployeeRepository
	roster.RosterRepository
	schedule.TemplateRepository
	holiday.HolidayRepository
	absence.SickLeaveRepository
	absence.AbsenceRepository
	clockevent.ClockEventRepository
	recon.PermittedHoursRepository

	cfg    config.ReconConfig
	logger *slog.Logger

	// now is the clock used for month-to-date calculations.
	now func() time.Time
}

func NewReconciliationService(
	employeeRepo employee.EmployeeRepository,
	rosterRepo roster.RosterRepository,
	templateRepo schedule.TemplateRepository,
	holidayRepo holiday.HolidayRepository,
	sickLeaveRepo absence.SickLeaveRepository,
	absenceRepo absence.AbsenceRepository,
	clockEventRepo clockevent.ClockEventRepository,
	permittedRepo recon.PermittedHoursRepository,
	cfg config.ReconConfig,
	logger *slog.Logger,
) recon.ReconciliationService {
	return &ReconServiceImpl{
		EmployeeRepository:       employeeRepo,
		RosterRepository:         rosterRepo,
		TemplateRepository:       templateRepo,
		HolidayRepository:        holidayRepo,
		SickLeaveRepository:      sickLeaveRepo,
		AbsenceRepository:        absenceRepo,
		ClockEventRepository:     clockEventRepo,
		PermittedHoursRepository: permittedRepo,
		cfg:                      cfg,
		logger:                   logger,
		now:                      time.Now,
	}
}

// ReconcileMonth implements recon.ReconciliationService.
func (s *ReconServiceImpl) ReconcileMonth(ctx context.Context, req recon.MonthlyRequest) (recon.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return recon.MonthlyReport{}, err
	}

	year, month, err := parseMonthKey(req.PeriodKey)
	if err != nil {
		return recon.MonthlyReport{}, err
	}

	days := monthDays(year, month)
	from, to := days[0], days[len(days)-1]

	employees, err := s.scopedEmployees(ctx, req.EmployeeCode)
	if err != nil {
		return recon.MonthlyReport{}, err
	}

	data, err := s.fetchDataset(ctx, []string{req.PeriodKey}, from, to)
	if err != nil {
		return recon.MonthlyReport{}, err
	}

	planner := newPlanner(data, s.cfg.DefaultRegion, s.collapseMinutes(), false, s.logger)

	// Month-to-date only applies while the requested month is still
	// running on the local reconciliation calendar.
	today := s.localToday()
	currentMonth := monthKeyOf(today) == req.PeriodKey
	todayKey := ""
	if currentMonth {
		todayKey = dateKeyOf(today)
	}

	summaries := make([]recon.MonthlyEmployeeSummary, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			summaries[i] = s.monthlySummary(planner, emp, days, todayKey, currentMonth)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Partial results would silently misreport totals.
		return recon.MonthlyReport{}, fmt.Errorf("failed to reconcile month %s: %w", req.PeriodKey, err)
	}

	return recon.MonthlyReport{
		PeriodKey:   req.PeriodKey,
		GeneratedAt: s.now().Format(time.RFC3339),
		Employees:   summaries,
	}, nil
}

// ReconcileYear implements recon.ReconciliationService.
func (s *ReconServiceImpl) ReconcileYear(ctx context.Context, req recon.AnnualRequest) (recon.AnnualReport, error) {
	if err := req.Validate(); err != nil {
		return recon.AnnualReport{}, err
	}

	year, err := parseYearKey(req.PeriodKey)
	if err != nil {
		return recon.AnnualReport{}, err
	}

	monthKeys := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		monthKeys = append(monthKeys, time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout))
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	employees, err := s.scopedEmployees(ctx, req.EmployeeCode)
	if err != nil {
		return recon.AnnualReport{}, err
	}

	data, err := s.fetchDataset(ctx, monthKeys, from, to)
	if err != nil {
		return recon.AnnualReport{}, err
	}

	// Annual rosters still carry the legacy bare-decimal cell encoding.
	planner := newPlanner(data, s.cfg.DefaultRegion, s.collapseMinutes(), true, s.logger)

	summaries := make([]recon.AnnualEmployeeSummary, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			summaries[i] = s.annualSummary(planner, emp, year)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return recon.AnnualReport{}, fmt.Errorf("failed to reconcile year %s: %w", req.PeriodKey, err)
	}

	return recon.AnnualReport{
		PeriodKey:   req.PeriodKey,
		GeneratedAt: s.now().Format(time.RFC3339),
		Employees:   summaries,
	}, nil
}

// monthlySummary runs the per-day pipeline for one employee and one
// month and rolls the results up.
func (s *ReconServiceImpl) monthlySummary(p *planner, emp employee.Employee, days []time.Time, todayKey string, currentMonth bool) recon.MonthlyEmployeeSummary {
	records := make([]recon.DailyRecord, 0, len(days))
	for _, day := range days {
		records = append(records, p.reconcileDay(emp, day))
	}

	totals := aggregateDays(records, todayKey)
	permitted := s.monthlyCeiling(p, emp.Group)

	return recon.MonthlyEmployeeSummary{
		EmployeeCode:    emp.Code,
		EmployeeName:    emp.Name,
		Group:           emp.Group,
		WorkCenter:      emp.WorkCenter,
		ContractType:    string(emp.ContractType()),
		ContractedHours: emp.ContractedHours,
		PlanSource:      totals.dominantSource(),
		Totals:          buildTotals(emp, totals, permitted),
		DayCounts:       totals.Counts,
		Status:          classifyStatus(totals, permitted, currentMonth, s.tolerance()),
		Days:            records,
	}
}

// annualSummary folds twelve monthly aggregates into one annual
// rollup for one employee.
func (s *ReconServiceImpl) annualSummary(p *planner, emp employee.Employee, year int) recon.AnnualEmployeeSummary {
	var (
		annualTotals periodTotals
		monthTags    []string
		months       []recon.MonthRollup
		detail       []recon.AnnualDailyRecord
	)

	for m := time.January; m <= time.December; m++ {
		var records []recon.DailyRecord
		for _, day := range monthDays(year, m) {
			record := p.reconcileDay(emp, day)
			records = append(records, record)
			detail = append(detail, recon.AnnualDailyRecord{
				Date:       record.Date,
				Plan:       record.Plan,
				PlanSource: record.PlanSource,
				Actual:     record.Actual,
				Delta:      record.Delta,
				Incomplete: record.Incomplete,
			})
		}

		monthly := aggregateDays(records, "")
		annualTotals = annualTotals.merge(monthly)
		monthTags = append(monthTags, monthly.dominantSource())
		months = append(months, recon.MonthRollup{
			MonthKey:   time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout),
			Plan:       monthly.Plan.Round(2),
			Actual:     monthly.Actual.Round(2),
			Excess:     monthly.Excess.Round(2),
			PlanSource: monthly.dominantSource(),
			DayCounts:  monthly.Counts,
		})
	}

	permitted := s.annualCeiling(p, emp.Group)

	return recon.AnnualEmployeeSummary{
		EmployeeCode:    emp.Code,
		EmployeeName:    emp.Name,
		Group:           emp.Group,
		WorkCenter:      emp.WorkCenter,
		ContractType:    string(emp.ContractType()),
		ContractedHours: emp.ContractedHours,
		PlanSource:      foldDominantSources(monthTags),
		Totals:          buildTotals(emp, annualTotals, permitted),
		DayCounts:       annualTotals.Counts,
		Status:          classifyStatus(annualTotals, permitted, false, s.tolerance()),
		Months:          months,
		Days:            detail,
	}
}

// scopedEmployees returns either every active employee or the single
// requested one. Scoping only narrows the employee list; the daily
// pipeline is identical either way.
func (s *ReconServiceImpl) scopedEmployees(ctx context.Context, code string) ([]employee.Employee, error) {
	if code == "" {
		employees, err := s.EmployeeRepository.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active employees: %w", err)
		}
		return employees, nil
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", code, err)
	}
	return []employee.Employee{emp}, nil
}

// fetchDataset performs one bulk read per source table, in parallel,
// and assembles the in-memory working set. Any single failed read is
// terminal for the whole invocation.
func (s *ReconServiceImpl) fetchDataset(ctx context.Context, monthKeys []string, from, to time.Time) (*dataset, error) {
	var (
		rosters    []roster.MonthlyRoster
		templates  []schedule.WeeklyTemplate
		holidays   []holiday.Holiday
		sickLeaves []absence.SickLeave
		absences   []absence.Absence
		events     []clockevent.ClockEvent
		permitted  []recon.PermittedHours
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rosters, err = s.RosterRepository.ListByMonths(gCtx, monthKeys)
		if err != nil {
			return fmt.Errorf("failed to list rosters: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		templates, err = s.TemplateRepository.ListActiveInRange(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list schedule templates: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		holidays, err = s.HolidayRepository.ListInRange(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		sickLeaves, err = s.SickLeaveRepository.ListOverlapping(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list sick leaves: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		absences, err = s.AbsenceRepository.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list absences: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		events, err = s.ClockEventRepository.ListInRange(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list clock events: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		permitted, err = s.PermittedHoursRepository.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list permitted hours: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newDataset(to, rosters, templates, holidays, sickLeaves, absences, events, permitted, s.logger), nil
}

func (s *ReconServiceImpl) monthlyCeiling(p *planner, group string) *decimal.Decimal {
	ph, ok := p.data.permittedFor(group)
	if !ok {
		return nil
	}
	v := ph.MonthlyHours
	return &v
}

func (s *ReconServiceImpl) annualCeiling(p *planner, group string) *decimal.Decimal {
	ph, ok := p.data.permittedFor(group)
	if !ok {
		return nil
	}
	v := ph.AnnualHours
	return &v
}

func (s *ReconServiceImpl) localToday() time.Time {
	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now := s.now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ReconServiceImpl) tolerance() decimal.Decimal {
	return decimal.NewFromFloat(s.cfg.ToleranceHours)
}

func (s *ReconServiceImpl) collapseMinutes() int {
	return int(s.cfg.WindowCollapseHours * 60)
}
