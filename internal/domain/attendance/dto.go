package attendance

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockRequest carries a Check-In or Check-Out. Latitude and longitude
// are nil when the raw parameter was absent or not numeric.
type ClockRequest struct {
	Phone     string
	Shift     string
	Latitude  *float64
	Longitude *float64
}

// ClockResponse names the office the event was charged to.
type ClockResponse struct {
	OfficeName string `json:"officeName"`
}

// HistoryRecord is one attendance log row projected for the history
// query. Timestamp is RFC 3339.
type HistoryRecord struct {
	Timestamp  string  `json:"timestamp"`
	EmployeeID string  `json:"employeeId"`
	OfficeID   string  `json:"officeId"`
	Shift      string  `json:"shift"`
	Action     string  `json:"action"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Status     string  `json:"status"`
}
