package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type officeRepositoryImpl struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepositoryImpl{db: db}
}

// GetByID implements office.OfficeRepository.
func (o *officeRepositoryImpl) GetByID(ctx context.Context, id string) (office.Office, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, name, number, latitude, longitude
		FROM offices
		WHERE id = $1
	`

	var off office.Office
	err := q.QueryRow(ctx, query, id).Scan(
		&off.ID, &off.Name, &off.Number, &off.Latitude, &off.Longitude,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office by id: %w", err)
	}

	return off, nil
}

// List implements office.OfficeRepository.
func (o *officeRepositoryImpl) List(ctx context.Context) ([]office.Office, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, name, number, latitude, longitude
		FROM offices
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	defer rows.Close()

	var offices []office.Office
	for rows.Next() {
		var off office.Office
		if err := rows.Scan(&off.ID, &off.Name, &off.Number, &off.Latitude, &off.Longitude); err != nil {
			return nil, err
		}
		offices = append(offices, off)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offices, nil
}
