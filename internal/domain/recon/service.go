package recon

import "context"

// ReconciliationService runs the time & attendance reconciliation
// engine over one calendar month or one calendar year. When the
// request carries an employee code the same pipeline runs scoped to
// that employee and yields the same per-day results as the unscoped
// run.
type ReconciliationService interface {
	ReconcileMonth(ctx context.Context, req MonthlyRequest) (MonthlyReport, error)
	ReconcileYear(ctx context.Context, req AnnualRequest) (AnnualReport, error)
}
