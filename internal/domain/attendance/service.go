package attendance

import "context"

// AttendanceService defines business logic for check-in/check-out and
// the history query.
type AttendanceService interface {
	// CheckIn validates the cooldown, same-day and geofence rules and
	// appends a Check-In record.
	CheckIn(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// CheckOut requires an active check-in for the phone and shift and
	// appends a Check-Out record.
	CheckOut(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// History returns every record for the normalized phone.
	History(ctx context.Context, phone string) ([]HistoryRecord, error)
}
