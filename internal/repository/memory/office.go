package memory

import (
	"context"
	"sync"

	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
)

type OfficeRepository struct {
	mu      sync.RWMutex
	offices []office.Office
}

func NewOfficeRepository(offices ...office.Office) *OfficeRepository {
	return &OfficeRepository{offices: offices}
}

// Add appends an office. Offices are otherwise read-only.
func (r *OfficeRepository) Add(off office.Office) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offices = append(r.offices, off)
}

// GetByID implements office.OfficeRepository.
func (r *OfficeRepository) GetByID(ctx context.Context, id string) (office.Office, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, off := range r.offices {
		if off.ID == id {
			return off, nil
		}
	}
	return office.Office{}, office.ErrOfficeNotFound
}

// List implements office.OfficeRepository.
func (r *OfficeRepository) List(ctx context.Context) ([]office.Office, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]office.Office, len(r.offices))
	copy(out, r.offices)
	return out, nil
}
