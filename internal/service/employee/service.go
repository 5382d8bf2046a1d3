package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// maxAccuracyMeters is the worst GPS accuracy accepted at registration.
const maxAccuracyMeters = 50

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	office.OfficeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, officeRepo office.OfficeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		OfficeRepository:   officeRepo,
	}
}

// Register implements employee.EmployeeService.
//
// Validation order matches the registration contract: password length,
// location presence, accuracy, role, office existence, phone uniqueness.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterRequest) error {
	if len(req.Password) < 6 {
		return employee.ErrPasswordTooShort
	}
	if req.Latitude == nil || req.Longitude == nil || req.Accuracy == nil {
		return employee.ErrLocationRequired
	}
	if *req.Accuracy > maxAccuracyMeters {
		return employee.ErrLowLocationAccuracy
	}
	if !employee.IsValidRole(req.Role) {
		return employee.ErrInvalidRole
	}

	if _, err := s.OfficeRepository.GetByID(ctx, req.OfficeID); err != nil {
		if errors.Is(err, office.ErrOfficeNotFound) {
			return employee.ErrOfficeDoesNotExist
		}
		return fmt.Errorf("failed to look up office: %w", err)
	}

	phone := validator.NormalizePhone(req.Phone)
	_, err := s.EmployeeRepository.GetByPhone(ctx, phone)
	if err == nil {
		return employee.ErrPhoneExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return fmt.Errorf("failed to look up employee by phone: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.EmployeeRepository.Create(ctx, employee.Employee{
		Phone:        phone,
		PasswordHash: string(hash),
		OfficeID:     req.OfficeID,
		Role:         req.Role,
		Name:         req.Name,
	})
	if err != nil {
		if errors.Is(err, employee.ErrPhoneExists) {
			return employee.ErrPhoneExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// Authenticate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Authenticate(ctx context.Context, req employee.LoginRequest) (employee.LoginResponse, error) {
	phone := validator.NormalizePhone(req.Phone)

	emp, err := s.EmployeeRepository.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.LoginResponse{}, employee.ErrInvalidCredentials
		}
		return employee.LoginResponse{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return employee.LoginResponse{}, employee.ErrInvalidCredentials
	}

	// Hub name is best effort; a dangling office id yields "".
	hubName := ""
	if off, err := s.OfficeRepository.GetByID(ctx, emp.OfficeID); err == nil {
		hubName = off.Name
	} else if !errors.Is(err, office.ErrOfficeNotFound) {
		return employee.LoginResponse{}, fmt.Errorf("failed to look up office: %w", err)
	}

	return employee.LoginResponse{
		Role:     emp.Role,
		Name:     emp.Name,
		HubName:  hubName,
		OfficeID: emp.OfficeID,
		Phone:    emp.Phone,
	}, nil
}

// ListAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListAll(ctx context.Context) ([]employee.Summary, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]employee.Summary, 0, len(employees))
	for _, emp := range employees {
		summaries = append(summaries, employee.Summary{
			Name:     emp.Name,
			Phone:    emp.Phone,
			Role:     emp.Role,
			OfficeID: emp.OfficeID,
		})
	}
	return summaries, nil
}

// AgentsByOffice implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AgentsByOffice(ctx context.Context, officeID string) (employee.AgentsByOfficeResponse, error) {
	agents, err := s.EmployeeRepository.ListByOfficeAndRole(ctx, officeID, employee.RoleAgent)
	if err != nil {
		return employee.AgentsByOfficeResponse{}, fmt.Errorf("failed to list agents: %w", err)
	}

	summaries := make([]employee.AgentSummary, 0, len(agents))
	for _, emp := range agents {
		summaries = append(summaries, employee.AgentSummary{
			Name:  emp.Name,
			Phone: emp.Phone,
		})
	}

	officeName := ""
	if off, err := s.OfficeRepository.GetByID(ctx, officeID); err == nil {
		officeName = off.Name
	} else if !errors.Is(err, office.ErrOfficeNotFound) {
		return employee.AgentsByOfficeResponse{}, fmt.Errorf("failed to look up office: %w", err)
	}

	return employee.AgentsByOfficeResponse{
		Agents:     summaries,
		OfficeName: officeName,
	}, nil
}
