// internal/models/vehicle.go
package models

import "time"

// Vehicle statuses.
const (
	VehicleAvailable = "Available"
	VehicleOnTrip    = "On Trip"
	VehicleInShop    = "In Shop"
	VehicleRetired   = "Retired"
)

// Vehicle is a fleet asset. ID/timestamps are declared explicitly because
// the business "Model" column would collide with an embedded gorm.Model.
type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Model           string  `json:"model"`
	LicensePlate    string  `json:"license_plate" gorm:"unique"`
	MaxCapacity     float64 `json:"max_capacity"` // kg
	Odometer        float64 `json:"odometer"`     // km
	AcquisitionCost float64 `json:"acquisition_cost"`
	Region          string  `json:"region"`
	VehicleType     string  `json:"vehicle_type"`
	Status          string  `json:"status"`

	// Last known position, maintained by the simulator.
	CurrentLat  *float64   `json:"current_lat"`
	CurrentLng  *float64   `json:"current_lng"`
	LastUpdated *time.Time `json:"last_updated"`
}
