package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, phone, password_hash, office_id, role, name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Phone,
		emp.PasswordHash,
		emp.OfficeID,
		emp.Role,
		emp.Name,
	).Scan(&emp.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrPhoneExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByPhone implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, phone, password_hash, office_id, role, name, created_at
		FROM employees
		WHERE phone = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, phone).Scan(
		&emp.ID, &emp.Phone, &emp.PasswordHash, &emp.OfficeID, &emp.Role, &emp.Name, &emp.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, phone, password_hash, office_id, role, name, created_at
		FROM employees
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListByOfficeAndRole implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByOfficeAndRole(ctx context.Context, officeID, role string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, phone, password_hash, office_id, role, name, created_at
		FROM employees
		WHERE office_id = $1 AND role = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, officeID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by office and role: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Phone, &emp.PasswordHash, &emp.OfficeID, &emp.Role, &emp.Name, &emp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}
