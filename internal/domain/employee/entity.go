package employee

import "time"

// Role values an employee can hold.
const (
	RoleAgent    = "agent"
	RoleIncharge = "incharge"
	RoleAdmin    = "admin"
)

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAgent, RoleIncharge, RoleAdmin:
		return true
	}
	return false
}

// Employee is identified by its normalized (digits-only) phone number.
// Rows are created by registration and never updated or deleted.
type Employee struct {
	ID           string
	Phone        string
	PasswordHash string
	OfficeID     string
	Role         string
	Name         string
	CreatedAt    time.Time
}
