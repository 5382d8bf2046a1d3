package office

import "context"

// OfficeService defines read queries over offices.
type OfficeService interface {
	// ListOffices returns every office.
	ListOffices(ctx context.Context) ([]Response, error)

	// GetLocationForEmployee returns the coordinates of the office the
	// employee with the given normalized phone is assigned to.
	GetLocationForEmployee(ctx context.Context, phone string) (LocationResponse, error)
}
