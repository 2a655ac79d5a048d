// internal/models/driver.go
package models

import "gorm.io/gorm"

// Driver statuses.
const (
	DriverAvailable = "Available"
	DriverOnDuty    = "On Duty"
	DriverOffDuty   = "Off Duty"
	DriverSuspended = "Suspended"
)

type Driver struct {
	gorm.Model
	Name            string `json:"name"`
	LicenseNumber   string `json:"license_number"`
	LicenseCategory string `json:"license_category"`
	ExpiryDate      string `json:"expiry_date" gorm:"type:date"` // YYYY-MM-DD
	SafetyScore     int    `json:"safety_score"`                 // 0-100
	Region          string `json:"region"`
	Status          string `json:"status"`
}

// ValidDriverStatus reports whether status is an accepted driver status.
func ValidDriverStatus(status string) bool {
	switch status {
	case DriverAvailable, DriverOnDuty, DriverOffDuty, DriverSuspended:
		return true
	}
	return false
}
