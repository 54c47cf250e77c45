package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT code, name, active, contract_text, contracted_hours,
			   work_center, group_name, works_holidays
		FROM employees
		WHERE active = TRUE
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.Code, &emp.Name, &emp.Active, &emp.ContractText, &emp.ContractedHours,
			&emp.WorkCenter, &emp.Group, &emp.WorksHolidays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT code, name, active, contract_text, contracted_hours,
			   work_center, group_name, works_holidays
		FROM employees
		WHERE code = $1
		  AND active = TRUE
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.Code, &emp.Name, &emp.Active, &emp.ContractText, &emp.ContractedHours,
		&emp.WorkCenter, &emp.Group, &emp.WorksHolidays,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}
