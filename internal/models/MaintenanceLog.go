// internal/models/maintenance_log.go
package models

import "gorm.io/gorm"

// MaintenanceLog records a service visit. Inserting one puts the vehicle
// In Shop.
type MaintenanceLog struct {
	gorm.Model
	VehicleID   uint    `json:"vehicle_id" gorm:"index"`
	Vehicle     Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	ServiceType string  `json:"service_type"`
	Cost        float64 `json:"cost"`
	ServiceDate string  `json:"service_date" gorm:"type:date"` // YYYY-MM-DD
}
