package attendance

import "time"

// Attendance actions. The values double as the wire-level action tags.
const (
	ActionCheckIn  = "Check-In"
	ActionCheckOut = "Check-Out"
)

// StatusActive is the status every appended record carries.
const StatusActive = "Active"

// Record is one row of the append-only attendance log. Insertion order
// equals chronological order; nothing ever updates or deletes a row.
type Record struct {
	ID            string
	Timestamp     time.Time
	EmployeePhone string
	OfficeID      string
	Shift         string
	Action        string
	Latitude      float64
	Longitude     float64
	Status        string
}
