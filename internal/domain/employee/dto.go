package employee

// ========================================
// EMPLOYEE DTOs
// ========================================

// RegisterRequest carries the addEmployee parameters. Latitude,
// longitude and accuracy are nil when the raw parameter was absent or
// did not parse as a number; the service decides in which order that is
// reported so the legacy validation sequence is preserved.
type RegisterRequest struct {
	OfficeID  string
	Name      string
	Phone     string
	Role      string
	Password  string
	Latitude  *float64
	Longitude *float64
	Accuracy  *float64
}

type LoginRequest struct {
	Phone    string
	Password string
}

// LoginResponse is the payload returned on a successful login. HubName
// is the display name of the employee's office, empty when the office
// row is missing.
type LoginResponse struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	HubName  string `json:"hubName"`
	OfficeID string `json:"officeID"`
	Phone    string `json:"phone"`
}

type Summary struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	OfficeID string `json:"officeID"`
}

type AgentSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AgentsByOfficeResponse struct {
	Agents     []AgentSummary `json:"agents"`
	OfficeName string         `json:"officeName"`
}
