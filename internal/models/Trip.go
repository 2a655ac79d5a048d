// internal/models/trip.go
package models

import "gorm.io/gorm"

// Trip statuses. Completed and Cancelled are terminal.
const (
	TripDraft      = "Draft"
	TripDispatched = "Dispatched"
	TripCompleted  = "Completed"
	TripCancelled  = "Cancelled"
)

type Trip struct {
	gorm.Model
	VehicleID uint    `json:"vehicle_id" gorm:"index"`
	DriverID  uint    `json:"driver_id" gorm:"index"`
	Vehicle   Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Driver    Driver  `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	CargoWeight   float64 `json:"cargo_weight"` // kg
	Revenue       float64 `json:"revenue"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	StartOdometer float64 `json:"start_odometer"`
	// Set only on completion.
	EndOdometer *float64 `json:"end_odometer"`
	Status      string   `json:"status"`
}

// Terminal reports whether the trip can no longer change state.
func (t *Trip) Terminal() bool {
	return t.Status == TripCompleted || t.Status == TripCancelled
}
