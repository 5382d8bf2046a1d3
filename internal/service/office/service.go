package office

import (
	"context"
	"fmt"

	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/validator"
)

type OfficeServiceImpl struct {
	office.OfficeRepository
	employee.EmployeeRepository
}

func NewOfficeService(officeRepo office.OfficeRepository, employeeRepo employee.EmployeeRepository) office.OfficeService {
	return &OfficeServiceImpl{
		OfficeRepository:   officeRepo,
		EmployeeRepository: employeeRepo,
	}
}

// ListOffices implements office.OfficeService.
func (s *OfficeServiceImpl) ListOffices(ctx context.Context) ([]office.Response, error) {
	offices, err := s.OfficeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	responses := make([]office.Response, 0, len(offices))
	for _, off := range offices {
		responses = append(responses, office.Response{
			ID:     off.ID,
			Name:   off.Name,
			Number: off.Number,
			Lat:    off.Latitude,
			Lng:    off.Longitude,
		})
	}
	return responses, nil
}

// GetLocationForEmployee implements office.OfficeService.
func (s *OfficeServiceImpl) GetLocationForEmployee(ctx context.Context, phone string) (office.LocationResponse, error) {
	emp, err := s.EmployeeRepository.GetByPhone(ctx, validator.NormalizePhone(phone))
	if err != nil {
		return office.LocationResponse{}, err
	}

	off, err := s.OfficeRepository.GetByID(ctx, emp.OfficeID)
	if err != nil {
		return office.LocationResponse{}, err
	}

	return office.LocationResponse{
		Latitude:  off.Latitude,
		Longitude: off.Longitude,
	}, nil
}
