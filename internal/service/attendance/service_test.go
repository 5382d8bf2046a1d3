package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPhone  = "15551234567"
	testOffice = "OFF-1"
)

type fixture struct {
	svc       *AttendanceServiceImpl
	employees *memory.EmployeeRepository
	offices   *memory.OfficeRepository
	records   *memory.AttendanceRepository
	current   time.Time
}

// newFixture builds a service over in-memory stores with one office at
// the origin and one registered employee. Time starts at 01:00 UTC so a
// full cooldown still lands on the same calendar day.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		employees: memory.NewEmployeeRepository(),
		offices: memory.NewOfficeRepository(office.Office{
			ID:        testOffice,
			Name:      "Central Hub",
			Number:    "001",
			Latitude:  0,
			Longitude: 0,
		}),
		records: memory.NewAttendanceRepository(),
		current: time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC),
	}

	_, err := f.employees.Create(context.Background(), employee.Employee{
		Phone:    testPhone,
		OfficeID: testOffice,
		Role:     employee.RoleAgent,
		Name:     "Asha",
	})
	require.NoError(t, err)

	f.svc = NewAttendanceService(f.records, f.employees, f.offices, 100, 10*time.Hour, time.UTC)
	f.svc.now = func() time.Time { return f.current }
	return f
}

func ptr(v float64) *float64 { return &v }

// nearOffice is ~100 m north of the office, inside the radius.
func nearOfficeRequest(shift string) attendance.ClockRequest {
	return attendance.ClockRequest{
		Phone:     testPhone,
		Shift:     shift,
		Latitude:  ptr(0.0009),
		Longitude: ptr(0),
	}
}

func TestCheckInSucceedsNearOffice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)
	assert.Equal(t, "Central Hub", resp.OfficeName)

	records, err := f.records.ListByPhone(ctx, testPhone)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.ActionCheckIn, records[0].Action)
	assert.Equal(t, attendance.StatusActive, records[0].Status)
	assert.Equal(t, testOffice, records[0].OfficeID)
	assert.Equal(t, "morning", records[0].Shift)
}

func TestCheckInMissingCoordinates(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(context.Background(), attendance.ClockRequest{
		Phone: testPhone,
		Shift: "morning",
	})
	assert.ErrorIs(t, err, attendance.ErrCoordinatesRequired)
}

func TestCheckInUnknownPhone(t *testing.T) {
	f := newFixture(t)

	req := nearOfficeRequest("morning")
	req.Phone = "628111111111"
	_, err := f.svc.CheckIn(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrPhoneNotRegistered)
}

func TestCheckInNormalizesPhone(t *testing.T) {
	f := newFixture(t)

	req := nearOfficeRequest("morning")
	req.Phone = "+1 (555) 123-4567"
	_, err := f.svc.CheckIn(context.Background(), req)
	require.NoError(t, err)

	records, err := f.records.ListByPhone(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCheckInOutsideGeofence(t *testing.T) {
	f := newFixture(t)

	req := nearOfficeRequest("morning")
	req.Latitude = ptr(0.01) // ~1.1 km away
	_, err := f.svc.CheckIn(context.Background(), req)

	var geofence attendance.GeofenceError
	require.ErrorAs(t, err, &geofence)
	assert.Greater(t, geofence.DistanceMeters, 100.0)
}

func TestCheckInNoOfficesConfigured(t *testing.T) {
	f := newFixture(t)
	f.svc.OfficeRepository = memory.NewOfficeRepository()

	_, err := f.svc.CheckIn(context.Background(), nearOfficeRequest("morning"))

	var geofence attendance.GeofenceError
	assert.ErrorAs(t, err, &geofence)
}

func TestCheckInCooldown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	f.current = f.current.Add(2 * time.Hour)
	_, err = f.svc.CheckIn(ctx, nearOfficeRequest("morning"))

	var cooldown attendance.CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.InDelta(t, 8.0, cooldown.RemainingHours, 0.001)
}

func TestCheckInSameDayDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	// Past the cooldown but still the same calendar day.
	f.current = f.current.Add(10 * time.Hour)
	_, err = f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInNextDayAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	f.current = f.current.Add(24 * time.Hour)
	_, err = f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	assert.NoError(t, err)
}

func TestCheckInShiftsAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	// A different shift label has no previous record, so no cooldown.
	_, err = f.svc.CheckIn(ctx, nearOfficeRequest("evening"))
	assert.NoError(t, err)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckOut(context.Background(), nearOfficeRequest("morning"))
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

func TestCheckOutDifferentShift(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	_, err = f.svc.CheckOut(ctx, nearOfficeRequest("evening"))
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

// TestCheckInCheckOutCycle walks the full morning-shift scenario:
// check-in succeeds, a same-day repeat is rejected, check-out succeeds
// once and only once.
func TestCheckInCheckOutCycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)
	assert.Equal(t, "Central Hub", resp.OfficeName)

	f.current = f.current.Add(10 * time.Hour)
	_, err = f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	resp, err = f.svc.CheckOut(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)
	assert.Equal(t, "Central Hub", resp.OfficeName)

	_, err = f.svc.CheckOut(ctx, nearOfficeRequest("morning"))
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

// TestCheckOutRestartsCooldownClock documents the inherited behavior
// that the cooldown measures from the most recent record of any action
// type, so a check-out delays the next check-in.
func TestCheckOutRestartsCooldownClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	f.current = f.current.Add(10 * time.Hour)
	_, err = f.svc.CheckOut(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	// 8 hours after the check-out, 18 after the check-in.
	f.current = f.current.Add(8 * time.Hour)
	_, err = f.svc.CheckIn(ctx, nearOfficeRequest("morning"))

	var cooldown attendance.CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.InDelta(t, 2.0, cooldown.RemainingHours, 0.001)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)
	f.current = f.current.Add(10 * time.Hour)
	_, err = f.svc.CheckOut(ctx, nearOfficeRequest("morning"))
	require.NoError(t, err)

	records, err := f.svc.History(ctx, "+1 (555) 123-4567")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, attendance.ActionCheckIn, records[0].Action)
	assert.Equal(t, attendance.ActionCheckOut, records[1].Action)
	assert.Equal(t, testPhone, records[0].EmployeeID)
	assert.Equal(t, "2025-06-01T01:00:00Z", records[0].Timestamp)
}

func TestHistoryEmpty(t *testing.T) {
	f := newFixture(t)

	records, err := f.svc.History(context.Background(), testPhone)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Len(t, records, 0)
}
