package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
// The reconciliation engine only ever reads employees; CRUD lives in
// the HR admin application.
type EmployeeRepository interface {
	// ListActive retrieves every active employee, ordered by code.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByCode retrieves one active employee by internal code.
	GetByCode(ctx context.Context, code string) (Employee, error)
}
