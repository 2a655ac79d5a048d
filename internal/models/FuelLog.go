// internal/models/fuel_log.go
package models

import "gorm.io/gorm"

type FuelLog struct {
	gorm.Model
	VehicleID uint    `json:"vehicle_id" gorm:"index"`
	Vehicle   Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Liters    float64 `json:"liters"`
	Cost      float64 `json:"cost"`
	Date      string  `json:"date" gorm:"type:date"` // YYYY-MM-DD
}
