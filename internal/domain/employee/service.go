package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	// Register validates and appends a new employee.
	Register(ctx context.Context, req RegisterRequest) error

	// Authenticate checks credentials and returns the login payload.
	Authenticate(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ListAll returns every employee.
	ListAll(ctx context.Context) ([]Summary, error)

	// AgentsByOffice returns agents assigned to an office plus the
	// office display name.
	AgentsByOffice(ctx context.Context, officeID string) (AgentsByOfficeResponse, error)
}
