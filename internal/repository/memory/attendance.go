package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records []attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// Append implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Append(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.records = append(r.records, rec)
	return rec, nil
}

// LastByPhoneAndShift implements attendance.AttendanceRepository.
func (r *AttendanceRepository) LastByPhoneAndShift(ctx context.Context, phone, shift string) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Reverse scan so the most recent match wins.
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].EmployeePhone == phone && r.records[i].Shift == shift {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

// ListByPhone implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByPhone(ctx context.Context, phone string) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeePhone == phone {
			out = append(out, rec)
		}
	}
	return out, nil
}
