package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Append implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Append(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, recorded_at, employee_phone, office_id, shift, action, latitude, longitude, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		rec.ID,
		rec.Timestamp,
		rec.EmployeePhone,
		rec.OfficeID,
		rec.Shift,
		rec.Action,
		rec.Latitude,
		rec.Longitude,
		rec.Status,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to append attendance record: %w", err)
	}

	return rec, nil
}

// LastByPhoneAndShift implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) LastByPhoneAndShift(ctx context.Context, phone, shift string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, recorded_at, employee_phone, office_id, shift, action, latitude, longitude, status
		FROM attendance_records
		WHERE employee_phone = $1 AND shift = $2
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, phone, shift).Scan(
		&rec.ID, &rec.Timestamp, &rec.EmployeePhone, &rec.OfficeID,
		&rec.Shift, &rec.Action, &rec.Latitude, &rec.Longitude, &rec.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last attendance record: %w", err)
	}

	return &rec, nil
}

// ListByPhone implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByPhone(ctx context.Context, phone string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, recorded_at, employee_phone, office_id, shift, action, latitude, longitude, status
		FROM attendance_records
		WHERE employee_phone = $1
		ORDER BY recorded_at
	`

	rows, err := q.Query(ctx, query, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.Timestamp, &rec.EmployeePhone, &rec.OfficeID,
			&rec.Shift, &rec.Action, &rec.Latitude, &rec.Longitude, &rec.Status,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
