package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/geo"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	office.OfficeRepository

	geofenceRadius float64
	cooldown       time.Duration
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	officeRepo office.OfficeRepository,
	geofenceRadius float64,
	cooldown time.Duration,
	loc *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		OfficeRepository:     officeRepo,
		geofenceRadius:       geofenceRadius,
		cooldown:             cooldown,
		loc:                  loc,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	return s.clock(ctx, req, attendance.ActionCheckIn)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	return s.clock(ctx, req, attendance.ActionCheckOut)
}

// clock is the shared check-in/check-out path: validate coordinates and
// phone, apply the action rule against the most recent record for the
// (phone, shift) pair, geofence against the nearest office, append.
func (s *AttendanceServiceImpl) clock(ctx context.Context, req attendance.ClockRequest, action string) (attendance.ClockResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return attendance.ClockResponse{}, attendance.ErrCoordinatesRequired
	}

	phone := validator.NormalizePhone(req.Phone)
	if _, err := s.EmployeeRepository.GetByPhone(ctx, phone); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ClockResponse{}, attendance.ErrPhoneNotRegistered
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	last, err := s.AttendanceRepository.LastByPhoneAndShift(ctx, phone, req.Shift)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to get last attendance record: %w", err)
	}

	now := s.now().In(s.loc)

	if action == attendance.ActionCheckIn {
		if err := s.checkInAllowed(last, now); err != nil {
			return attendance.ClockResponse{}, err
		}
	} else {
		// Exactly one check-out per check-in cycle.
		if last == nil || last.Action != attendance.ActionCheckIn {
			return attendance.ClockResponse{}, attendance.ErrNoActiveCheckIn
		}
	}

	nearest, dist, err := s.nearestOffice(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	if nearest == nil || dist > s.geofenceRadius {
		return attendance.ClockResponse{}, attendance.GeofenceError{DistanceMeters: dist}
	}

	_, err = s.AttendanceRepository.Append(ctx, attendance.Record{
		Timestamp:     now,
		EmployeePhone: phone,
		OfficeID:      nearest.ID,
		Shift:         req.Shift,
		Action:        action,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		Status:        attendance.StatusActive,
	})
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to append attendance record: %w", err)
	}

	return attendance.ClockResponse{OfficeName: nearest.Name}, nil
}

// checkInAllowed applies the cooldown and same-day rules against the
// previous record for the pair. The previous record is matched by
// (phone, shift) regardless of its action type; a Check-Out therefore
// restarts the cooldown clock, matching the legacy behavior.
func (s *AttendanceServiceImpl) checkInAllowed(last *attendance.Record, now time.Time) error {
	if last == nil {
		return nil
	}

	elapsed := now.Sub(last.Timestamp)
	if elapsed < s.cooldown {
		return attendance.CooldownError{RemainingHours: (s.cooldown - elapsed).Hours()}
	}

	if last.Timestamp.In(s.loc).Format("2006-01-02") == now.Format("2006-01-02") {
		return attendance.ErrAlreadyCheckedIn
	}

	return nil
}

// nearestOffice returns the office closest to the given point and the
// distance to it in meters. dist is +Inf when no offices exist.
func (s *AttendanceServiceImpl) nearestOffice(ctx context.Context, lat, lng float64) (*office.Office, float64, error) {
	offices, err := s.OfficeRepository.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list offices: %w", err)
	}

	var nearest *office.Office
	minDist := math.Inf(1)
	for i := range offices {
		d := geo.Distance(lat, lng, offices[i].Latitude, offices[i].Longitude)
		if d < minDist {
			minDist = d
			nearest = &offices[i]
		}
	}
	return nearest, minDist, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, phone string) ([]attendance.HistoryRecord, error) {
	records, err := s.AttendanceRepository.ListByPhone(ctx, validator.NormalizePhone(phone))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	out := make([]attendance.HistoryRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.HistoryRecord{
			Timestamp:  rec.Timestamp.UTC().Format(time.RFC3339),
			EmployeeID: rec.EmployeePhone,
			OfficeID:   rec.OfficeID,
			Shift:      rec.Shift,
			Action:     rec.Action,
			Latitude:   rec.Latitude,
			Longitude:  rec.Longitude,
			Status:     rec.Status,
		})
	}
	return out, nil
}
