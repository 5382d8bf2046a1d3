// Package memory holds map-backed implementations of the repository
// interfaces. Tests run against these; they also serve single-process
// deployments where PostgreSQL is not available.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// Create implements employee.EmployeeRepository.
func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Phone == emp.Phone {
			return employee.Employee{}, employee.ErrPhoneExists
		}
	}

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = time.Now()
	}
	r.employees = append(r.employees, emp)
	return emp, nil
}

// GetByPhone implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.Phone == phone {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// ListByOfficeAndRole implements employee.EmployeeRepository.
func (r *EmployeeRepository) ListByOfficeAndRole(ctx context.Context, officeID, role string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.OfficeID == officeID && emp.Role == role {
			out = append(out, emp)
		}
	}
	return out, nil
}
