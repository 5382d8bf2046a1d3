package employee

import "context"

// EmployeeRepository defines data access for the employees table.
// Phones are normalized before they reach the repository.
type EmployeeRepository interface {
	// Create appends a new employee row.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByPhone retrieves an employee by normalized phone.
	// Returns ErrEmployeeNotFound when the phone is unknown.
	GetByPhone(ctx context.Context, phone string) (Employee, error)

	// List retrieves every employee in insertion order.
	List(ctx context.Context) ([]Employee, error)

	// ListByOfficeAndRole retrieves employees of one office filtered by role.
	ListByOfficeAndRole(ctx context.Context, officeID, role string) ([]Employee, error)
}
