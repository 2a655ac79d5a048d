// internal/models/user.go
package models

import "gorm.io/gorm"

// Application roles. Authorization matches these case-insensitively.
const (
	RoleFleetManager     = "Fleet Manager"
	RoleDispatcher       = "Dispatcher"
	RoleSafetyOfficer    = "Safety Officer"
	RoleFinancialAnalyst = "Financial Analyst"
)

// User is a login profile. Drivers are fleet personnel records, not users.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Role     string `json:"role"` // one of the Role* constants
}

func (User) TableName() string { return "profiles" }

// ValidRole reports whether role names one of the four application roles.
func ValidRole(role string) bool {
	switch role {
	case RoleFleetManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst:
		return true
	}
	return false
}
