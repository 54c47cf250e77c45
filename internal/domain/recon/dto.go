package recon

import (
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// RECONCILIATION DTOs
// ========================================

type MonthlyRequest struct {
	// PeriodKey is an ISO month key (YYYY-MM).
	PeriodKey string `json:"period_key"`
	// EmployeeCode scopes the run to one employee when set.
	EmployeeCode string `json:"employee_code,omitempty"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonthKey(r.PeriodKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_key",
			Message: "period_key must have format YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnualRequest struct {
	// PeriodKey is a four-digit year.
	PeriodKey string `json:"period_key"`
	// EmployeeCode scopes the run to one employee when set.
	EmployeeCode string `json:"employee_code,omitempty"`
}

func (r *AnnualRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYearKey(r.PeriodKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_key",
			Message: "period_key must have format YYYY",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailyRecord is one day's reconciliation result in a monthly report.
type DailyRecord struct {
	Date       string          `json:"date"`
	Plan       decimal.Decimal `json:"plan"`
	PlanSource PlanSource      `json:"plan_source"`
	Actual     decimal.Decimal `json:"actual"`
	Delta      decimal.Decimal `json:"delta"`
	Incomplete bool            `json:"incomplete"`
	Ordinary   decimal.Decimal `json:"ordinary"`
	Excess     decimal.Decimal `json:"excess"`
}

// AnnualDailyRecord is one day's detail in an annual report. The
// per-day ordinary/excess split is only reported on monthly detail.
type AnnualDailyRecord struct {
	Date       string          `json:"date"`
	Plan       decimal.Decimal `json:"plan"`
	PlanSource PlanSource      `json:"plan_source"`
	Actual     decimal.Decimal `json:"actual"`
	Delta      decimal.Decimal `json:"delta"`
	Incomplete bool            `json:"incomplete"`
}

// DayCounts is the breakdown of zero-plan days by cause.
type DayCounts struct {
	SickLeave int `json:"sick_leave"`
	Vacation  int `json:"vacation"`
	Absence   int `json:"absence"`
	Holiday   int `json:"holiday"`
}

// StatusFlags carries the three independent exception flags.
type StatusFlags struct {
	PlanToDate Status `json:"plan_to_date"`
	Plan       Status `json:"plan"`
	Permitted  Status `json:"permitted"`
}

// PeriodTotals is the final period-level hour classification.
type PeriodTotals struct {
	Plan          decimal.Decimal  `json:"plan"`
	PlanToDate    decimal.Decimal  `json:"plan_to_date"`
	Actual        decimal.Decimal  `json:"actual"`
	Ordinary      decimal.Decimal  `json:"ordinary"`
	Complementary decimal.Decimal  `json:"complementary"`
	Extraordinary decimal.Decimal  `json:"extraordinary"`
	Permitted     *decimal.Decimal `json:"permitted,omitempty"`
}

// MonthlyEmployeeSummary is one employee's monthly rollup with its
// full ordered daily detail.
type MonthlyEmployeeSummary struct {
	EmployeeCode    string          `json:"employee_code"`
	EmployeeName    string          `json:"employee_name"`
	Group           string          `json:"group"`
	WorkCenter      string          `json:"work_center"`
	ContractType    string          `json:"contract_type"`
	ContractedHours decimal.Decimal `json:"contracted_hours"`
	PlanSource      string          `json:"plan_source"`
	Totals          PeriodTotals    `json:"totals"`
	DayCounts       DayCounts       `json:"day_counts"`
	Status          StatusFlags     `json:"status"`
	Days            []DailyRecord   `json:"days"`
}

type MonthlyReport struct {
	PeriodKey   string                   `json:"period_key"`
	GeneratedAt string                   `json:"generated_at"`
	Employees   []MonthlyEmployeeSummary `json:"employees"`
}

// MonthRollup is one month's contribution to an annual summary.
type MonthRollup struct {
	MonthKey   string          `json:"month_key"`
	Plan       decimal.Decimal `json:"plan"`
	Actual     decimal.Decimal `json:"actual"`
	Excess     decimal.Decimal `json:"excess"`
	PlanSource string          `json:"plan_source"`
	DayCounts  DayCounts       `json:"day_counts"`
}

// AnnualEmployeeSummary is one employee's annual rollup.
type AnnualEmployeeSummary struct {
	EmployeeCode    string              `json:"employee_code"`
	EmployeeName    string              `json:"employee_name"`
	Group           string              `json:"group"`
	WorkCenter      string              `json:"work_center"`
	ContractType    string              `json:"contract_type"`
	ContractedHours decimal.Decimal     `json:"contracted_hours"`
	PlanSource      string              `json:"plan_source"`
	Totals          PeriodTotals        `json:"totals"`
	DayCounts       DayCounts           `json:"day_counts"`
	Status          StatusFlags         `json:"status"`
	Months          []MonthRollup       `json:"months"`
	Days            []AnnualDailyRecord `json:"days"`
}

type AnnualReport struct {
	PeriodKey   string                  `json:"period_key"`
	GeneratedAt string                  `json:"generated_at"`
	Employees   []AnnualEmployeeSummary `json:"employees"`
}
