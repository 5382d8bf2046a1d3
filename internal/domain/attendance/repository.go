package attendance

import "context"

// AttendanceRepository defines data access for the append-only
// attendance log.
type AttendanceRepository interface {
	// Append stores a new record at the end of the log.
	Append(ctx context.Context, rec Record) (Record, error)

	// LastByPhoneAndShift returns the most recent record matching the
	// normalized phone and shift, or nil when none exists. The lookup
	// deliberately matches records of either action type.
	LastByPhoneAndShift(ctx context.Context, phone, shift string) (*Record, error)

	// ListByPhone returns every record for the normalized phone in
	// insertion order.
	ListByPhone(ctx context.Context, phone string) ([]Record, error)
}
