package recon

import (
	"testing"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dailyRecord(t *testing.T, date, plan, actual string, source recon.PlanSource) recon.DailyRecord {
	t.Helper()
	p := mustDecimal(t, plan)
	a := mustDecimal(t, actual)
	return recon.DailyRecord{
		Date:       date,
		Plan:       p,
		PlanSource: source,
		Actual:     a,
		Delta:      a.Sub(p),
		Ordinary:   decimal.Min(a, p),
		Excess:     decimal.Max(decimal.Zero, a.Sub(p)),
	}
}

func TestAggregateDays(t *testing.T) {
	t.Parallel()

	days := []recon.DailyRecord{
		dailyRecord(t, "2025-06-02", "8", "8", recon.SourceRoster),
		dailyRecord(t, "2025-06-03", "8", "9.5", recon.SourceRoster),
		dailyRecord(t, "2025-06-04", "0", "0", recon.SourceHoliday),
		dailyRecord(t, "2025-06-05", "0", "0", recon.SourceSickLeave),
		dailyRecord(t, "2025-06-06", "8", "6", recon.SourceTemplate),
	}

	totals := aggregateDays(days, "")

	assert.True(t, totals.Plan.Equal(mustDecimal(t, "24")))
	assert.True(t, totals.PlanToDate.Equal(totals.Plan), "no today cutoff means full plan")
	assert.True(t, totals.Actual.Equal(mustDecimal(t, "23.5")))
	assert.True(t, totals.Ordinary.Equal(mustDecimal(t, "22")))
	assert.True(t, totals.Excess.Equal(mustDecimal(t, "1.5")))
	assert.Equal(t, recon.DayCounts{SickLeave: 1, Holiday: 1}, totals.Counts)
	assert.Equal(t, recon.DominantMixed, totals.dominantSource())
}

func TestAggregateDays_MonthToDateCutoff(t *testing.T) {
	t.Parallel()

	days := []recon.DailyRecord{
		dailyRecord(t, "2025-06-02", "8", "8", recon.SourceRoster),
		dailyRecord(t, "2025-06-03", "8", "8", recon.SourceRoster),
		dailyRecord(t, "2025-06-04", "8", "0", recon.SourceRoster),
	}

	totals := aggregateDays(days, "2025-06-03")

	// Future days still count toward the full plan, just not to date.
	assert.True(t, totals.Plan.Equal(mustDecimal(t, "24")))
	assert.True(t, totals.PlanToDate.Equal(mustDecimal(t, "16")))
	assert.True(t, totals.Actual.Equal(mustDecimal(t, "16")))
}

func TestPeriodTotalsMerge(t *testing.T) {
	t.Parallel()

	june := aggregateDays([]recon.DailyRecord{
		dailyRecord(t, "2025-06-02", "8", "8", recon.SourceRoster),
		dailyRecord(t, "2025-06-03", "0", "0", recon.SourceVacation),
	}, "")
	july := aggregateDays([]recon.DailyRecord{
		dailyRecord(t, "2025-07-01", "8", "10", recon.SourceTemplate),
		dailyRecord(t, "2025-07-02", "0", "0", recon.SourceVacation),
	}, "")

	merged := june.merge(july)

	assert.True(t, merged.Plan.Equal(mustDecimal(t, "16")))
	assert.True(t, merged.Actual.Equal(mustDecimal(t, "18")))
	assert.True(t, merged.Excess.Equal(mustDecimal(t, "2")))
	assert.Equal(t, recon.DayCounts{Vacation: 2}, merged.Counts)
	assert.Equal(t, recon.DominantMixed, merged.dominantSource())
}

func TestDominantSource(t *testing.T) {
	t.Parallel()

	rosterOnly := aggregateDays([]recon.DailyRecord{
		dailyRecord(t, "2025-06-02", "8", "8", recon.SourceRoster),
	}, "")
	assert.Equal(t, recon.DominantRoster, rosterOnly.dominantSource())

	templateOnly := aggregateDays([]recon.DailyRecord{
		dailyRecord(t, "2025-06-02", "8", "8", recon.SourceTemplate),
	}, "")
	assert.Equal(t, recon.DominantTemplate, templateOnly.dominantSource())

	neither := aggregateDays([]recon.DailyRecord{
		dailyRecord(t, "2025-06-02", "0", "0", recon.SourceSickLeave),
	}, "")
	assert.Equal(t, "", neither.dominantSource())
}

func TestFoldDominantSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		monthly []string
		want    string
	}{
		{"all roster", []string{recon.DominantRoster, recon.DominantRoster}, recon.DominantRoster},
		{"all template", []string{recon.DominantTemplate}, recon.DominantTemplate},
		{"untagged months ignored", []string{"", recon.DominantRoster, ""}, recon.DominantRoster},
		{"disagreement", []string{recon.DominantRoster, recon.DominantTemplate}, recon.DominantMixed},
		{"mixed month", []string{recon.DominantMixed, recon.DominantRoster}, recon.DominantMixed},
		{"nothing tagged", []string{"", ""}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, foldDominantSources(tt.monthly))
		})
	}
}

func partTimeEmployee(t *testing.T, contracted string) employee.Employee {
	t.Helper()
	emp := testEmployee("E001")
	emp.ContractText = "Jornada parcial"
	emp.ContractedHours = mustDecimal(t, contracted)
	return emp
}

func fullTimeEmployee(t *testing.T, contracted string) employee.Employee {
	t.Helper()
	emp := testEmployee("E001")
	emp.ContractedHours = mustDecimal(t, contracted)
	return emp
}

func TestClassifyOvertime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		emp               employee.Employee
		plan              string
		actual            string
		excess            string
		permitted         *decimal.Decimal
		wantComplementary string
		wantExtraordinary string
		wantOrdinary      string
	}{
		{
			name:   "part-time excess splits at the contracted base",
			emp:    partTimeEmployee(t, "20"),
			plan:   "15",
			actual: "25",
			excess: "10",
			// 5 hours of headroom up to the 20h contract, the rest is
			// extraordinary.
			wantComplementary: "5",
			wantExtraordinary: "5",
			wantOrdinary:      "15",
		},
		{
			name:              "part-time already planned at the contract",
			emp:               partTimeEmployee(t, "20"),
			plan:              "20",
			actual:            "23",
			excess:            "3",
			wantComplementary: "0",
			wantExtraordinary: "3",
			wantOrdinary:      "20",
		},
		{
			name:              "part-time within plan",
			emp:               partTimeEmployee(t, "20"),
			plan:              "15",
			actual:            "12",
			excess:            "0",
			wantComplementary: "0",
			wantExtraordinary: "0",
			wantOrdinary:      "12",
		},
		{
			name:              "full-time beyond contract",
			emp:               fullTimeEmployee(t, "160"),
			plan:              "160",
			actual:            "170",
			excess:            "10",
			wantComplementary: "0",
			wantExtraordinary: "10",
			wantOrdinary:      "160",
		},
		{
			name:              "full-time under contract keeps excess as ordinary",
			emp:               fullTimeEmployee(t, "160"),
			plan:              "120",
			actual:            "130",
			excess:            "10",
			wantComplementary: "0",
			wantExtraordinary: "0",
			wantOrdinary:      "130",
		},
		{
			name:              "no contract falls back to the permitted ceiling",
			emp:               testEmployee("E001"),
			plan:              "150",
			actual:            "170",
			excess:            "20",
			permitted:         decimalPtr(t, "160"),
			wantComplementary: "0",
			wantExtraordinary: "10",
			wantOrdinary:      "160",
		},
		{
			name:              "no contract and no ceiling stays unclassified",
			emp:               testEmployee("E001"),
			plan:              "150",
			actual:            "170",
			excess:            "20",
			wantComplementary: "0",
			wantExtraordinary: "20",
			wantOrdinary:      "150",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			totals := periodTotals{
				Plan:   mustDecimal(t, tt.plan),
				Actual: mustDecimal(t, tt.actual),
				Excess: mustDecimal(t, tt.excess),
			}

			complementary, extraordinary, ordinary := classifyOvertime(tt.emp, totals, tt.permitted)

			assert.True(t, complementary.Equal(mustDecimal(t, tt.wantComplementary)),
				"complementary = %s", complementary)
			assert.True(t, extraordinary.Equal(mustDecimal(t, tt.wantExtraordinary)),
				"extraordinary = %s", extraordinary)
			assert.True(t, ordinary.Equal(mustDecimal(t, tt.wantOrdinary)),
				"ordinary = %s", ordinary)

			// The three buckets always partition the actual hours.
			sum := ordinary.Add(complementary).Add(extraordinary)
			assert.True(t, sum.Equal(totals.Actual))
		})
	}
}

func decimalPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := mustDecimal(t, s)
	return &d
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tolerance := mustDecimal(t, "0.25")

	tests := []struct {
		name         string
		plan         string
		planToDate   string
		actual       string
		permitted    *decimal.Decimal
		currentMonth bool
		want         recon.StatusFlags
	}{
		{
			name:       "closed month within plan",
			plan:       "160",
			planToDate: "160",
			actual:     "159",
			want: recon.StatusFlags{
				PlanToDate: recon.StatusNotApplicable,
				Plan:       recon.StatusOK,
				Permitted:  recon.StatusNotApplicable,
			},
		},
		{
			name:       "excess within tolerance stays ok",
			plan:       "160",
			planToDate: "160",
			actual:     "160.25",
			want: recon.StatusFlags{
				PlanToDate: recon.StatusNotApplicable,
				Plan:       recon.StatusOK,
				Permitted:  recon.StatusNotApplicable,
			},
		},
		{
			name:       "excess just past tolerance flags the plan",
			plan:       "160",
			planToDate: "160",
			actual:     "160.26",
			want: recon.StatusFlags{
				PlanToDate: recon.StatusNotApplicable,
				Plan:       recon.StatusExceeded,
				Permitted:  recon.StatusNotApplicable,
			},
		},
		{
			name:         "current month compares against plan to date",
			plan:         "160",
			planToDate:   "80",
			actual:       "95",
			currentMonth: true,
			want: recon.StatusFlags{
				PlanToDate: recon.StatusExceeded,
				Plan:       recon.StatusOK,
				Permitted:  recon.StatusNotApplicable,
			},
		},
		{
			name:         "current month on track",
			plan:         "160",
			planToDate:   "80",
			actual:       "78",
			currentMonth: true,
			want: recon.StatusFlags{
				PlanToDate: recon.StatusOK,
				Plan:       recon.StatusOK,
				Permitted:  recon.StatusNotApplicable,
			},
		},
		{
			name:       "permitted ceiling exceeded",
			plan:       "150",
			planToDate: "150",
			actual:     "171",
			permitted:  decimalPtr(t, "170"),
			want: recon.StatusFlags{
				PlanToDate: recon.StatusNotApplicable,
				Plan:       recon.StatusExceeded,
				Permitted:  recon.StatusExceeded,
			},
		},
		{
			name:       "permitted ceiling respected",
			plan:       "150",
			planToDate: "150",
			actual:     "155",
			permitted:  decimalPtr(t, "170"),
			want: recon.StatusFlags{
				PlanToDate: recon.StatusNotApplicable,
				Plan:       recon.StatusExceeded,
				Permitted:  recon.StatusOK,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			totals := periodTotals{
				Plan:       mustDecimal(t, tt.plan),
				PlanToDate: mustDecimal(t, tt.planToDate),
				Actual:     mustDecimal(t, tt.actual),
			}

			got := classifyStatus(totals, tt.permitted, tt.currentMonth, tolerance)
			assert.Equal(t, tt.want, got)
		})
	}
}
