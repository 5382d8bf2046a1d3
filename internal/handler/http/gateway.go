package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	"github.com/hubtrack/attendance-backend-go/internal/domain/office"
	"github.com/hubtrack/attendance-backend-go/internal/handler/http/response"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/validator"
)

// GatewayHandler is the single POST entry point. It dispatches on the
// "action" form parameter the way the legacy endpoint did.
type GatewayHandler interface {
	Dispatch(w http.ResponseWriter, r *http.Request)
}

// rateLimitExempt lists the actions never throttled per phone.
var rateLimitExempt = map[string]bool{
	"addEmployee":     true,
	"login":           true,
	"getOffices":      true,
	"getAllEmployees": true,
}

type gatewayHandlerImpl struct {
	employeeService   employee.EmployeeService
	officeService     office.OfficeService
	attendanceService attendance.AttendanceService
	limiter           *ratelimit.Limiter
}

func NewGatewayHandler(
	employeeService employee.EmployeeService,
	officeService office.OfficeService,
	attendanceService attendance.AttendanceService,
	limiter *ratelimit.Limiter,
) GatewayHandler {
	return &gatewayHandlerImpl{
		employeeService:   employeeService,
		officeService:     officeService,
		attendanceService: attendanceService,
		limiter:           limiter,
	}
}

// Dispatch implements GatewayHandler.
func (h *gatewayHandlerImpl) Dispatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("Failed to parse form", "error", err)
		response.Fail(w, "Invalid form data")
		return
	}

	action, err := requiredParam(r, "action")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	phone := validator.NormalizePhone(r.FormValue("phone"))

	if phone != "" && !rateLimitExempt[action] {
		allowed, err := h.limiter.Allow(r.Context(), phone)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !allowed {
			response.Fail(w, "Rate limit exceeded. Please wait.")
			return
		}
	}

	logPhone := phone
	if logPhone == "" {
		logPhone = "N/A"
	}
	slog.Info("Action received", "action", action, "phone", logPhone)

	switch action {
	case "addEmployee":
		h.addEmployee(w, r)
	case "login":
		h.login(w, r)
	case "getOffices":
		h.getOffices(w, r)
	case "getOfficeLocation":
		h.getOfficeLocation(w, r)
	case attendance.ActionCheckIn, attendance.ActionCheckOut:
		h.clock(w, r, action)
	case "getHistory":
		h.getHistory(w, r)
	case "getAgentsByOffice":
		h.getAgentsByOffice(w, r)
	case "getAllEmployees":
		h.getAllEmployees(w, r)
	default:
		response.Fail(w, "Invalid action")
	}
}

func (h *gatewayHandlerImpl) addEmployee(w http.ResponseWriter, r *http.Request) {
	req := employee.RegisterRequest{
		Latitude:  floatParam(r, "latitude"),
		Longitude: floatParam(r, "longitude"),
		Accuracy:  floatParam(r, "accuracy"),
	}

	var err error
	if req.OfficeID, err = requiredParam(r, "office"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Name, err = requiredParam(r, "name"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Phone, err = requiredParam(r, "phone"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Role, err = requiredParam(r, "role"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Password, err = requiredParam(r, "password"); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.Register(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Employee added successfully")
}

func (h *gatewayHandlerImpl) login(w http.ResponseWriter, r *http.Request) {
	var req employee.LoginRequest

	var err error
	if req.Phone, err = requiredParam(r, "phone"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Password, err = requiredParam(r, "password"); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.Authenticate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, loginPayload{
		Envelope:      response.Envelope{Success: true, Message: "Login success"},
		LoginResponse: result,
	})
}

func (h *gatewayHandlerImpl) getOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeService.ListOffices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, officesPayload{
		Envelope: response.Envelope{Success: true},
		Offices:  offices,
	})
}

func (h *gatewayHandlerImpl) getOfficeLocation(w http.ResponseWriter, r *http.Request) {
	phone, err := requiredParam(r, "phone")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	loc, err := h.officeService.GetLocationForEmployee(r.Context(), phone)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, locationPayload{
		Envelope:         response.Envelope{Success: true},
		LocationResponse: loc,
	})
}

func (h *gatewayHandlerImpl) clock(w http.ResponseWriter, r *http.Request, action string) {
	shift, err := requiredParam(r, "shift")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.ClockRequest{
		Phone:     r.FormValue("phone"),
		Shift:     shift,
		Latitude:  floatParam(r, "latitude"),
		Longitude: floatParam(r, "longitude"),
	}

	var result attendance.ClockResponse
	if action == attendance.ActionCheckIn {
		result, err = h.attendanceService.CheckIn(r.Context(), req)
	} else {
		result, err = h.attendanceService.CheckOut(r.Context(), req)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, clockPayload{
		Envelope: response.Envelope{
			Success: true,
			Message: fmt.Sprintf("%s successful at %s", action, result.OfficeName),
		},
		ClockResponse: result,
	})
}

func (h *gatewayHandlerImpl) getHistory(w http.ResponseWriter, r *http.Request) {
	phone, err := requiredParam(r, "phone")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.History(r.Context(), phone)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, historyPayload{
		Envelope: response.Envelope{Success: true},
		Records:  records,
	})
}

func (h *gatewayHandlerImpl) getAgentsByOffice(w http.ResponseWriter, r *http.Request) {
	officeID, err := requiredParam(r, "officeID")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.AgentsByOffice(r.Context(), officeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, agentsPayload{
		Envelope:               response.Envelope{Success: true},
		AgentsByOfficeResponse: result,
	})
}

func (h *gatewayHandlerImpl) getAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Write(w, employeesPayload{
		Envelope:  response.Envelope{Success: true},
		Employees: employees,
	})
}

// Action payloads. Each embeds the envelope so the extra fields encode
// flat beside success and message.

type loginPayload struct {
	response.Envelope
	employee.LoginResponse
}

type officesPayload struct {
	response.Envelope
	Offices []office.Response `json:"offices"`
}

type locationPayload struct {
	response.Envelope
	office.LocationResponse
}

type clockPayload struct {
	response.Envelope
	attendance.ClockResponse
}

type historyPayload struct {
	response.Envelope
	Records []attendance.HistoryRecord `json:"records"`
}

type agentsPayload struct {
	response.Envelope
	employee.AgentsByOfficeResponse
}

type employeesPayload struct {
	response.Envelope
	Employees []employee.Summary `json:"employees"`
}

// requiredParam returns the trimmed form value for key, failing when it
// is absent or blank.
func requiredParam(r *http.Request, key string) (string, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return "", validator.MissingParamError{Param: key}
	}
	return v, nil
}

// floatParam parses the form value for key, returning nil when the
// value is absent or not numeric. Services decide how to report that.
func floatParam(r *http.Request, key string) *float64 {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
