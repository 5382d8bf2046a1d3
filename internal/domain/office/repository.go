package office

import "context"

// OfficeRepository defines read access to the offices table.
type OfficeRepository interface {
	// GetByID retrieves an office. Returns ErrOfficeNotFound when the
	// id is unknown.
	GetByID(ctx context.Context, id string) (Office, error)

	// List retrieves every office.
	List(ctx context.Context) ([]Office, error)
}
