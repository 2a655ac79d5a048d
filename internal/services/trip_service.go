package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"fleet_api/internal/models"
)

// TripService executes trip lifecycle transitions. Every transition that
// touches more than one row (trip + vehicle + driver) runs inside a single
// database transaction so a failed write never strands a half-applied
// status change.
type TripService struct {
	db *gorm.DB
}

func NewTripService(db *gorm.DB) *TripService {
	return &TripService{db: db}
}

// TripInput carries the mutable trip fields for create and update.
type TripInput struct {
	VehicleID     uint    `json:"vehicle_id" binding:"required"`
	DriverID      uint    `json:"driver_id" binding:"required"`
	CargoWeight   float64 `json:"cargo_weight"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	StartOdometer float64 `json:"start_odometer"`
	Revenue       float64 `json:"revenue"`
}

// CreateDraft inserts a new trip in Draft. The referenced vehicle and
// driver must exist; revenue and start odometer default to zero.
func (s *TripService) CreateDraft(input TripInput) (models.Trip, error) {
	var trip models.Trip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findVehicle(tx, input.VehicleID); err != nil {
			return err
		}
		if _, err := findDriver(tx, input.DriverID); err != nil {
			return err
		}
		trip = models.Trip{
			VehicleID:     input.VehicleID,
			DriverID:      input.DriverID,
			CargoWeight:   input.CargoWeight,
			StartLocation: input.StartLocation,
			EndLocation:   input.EndLocation,
			StartOdometer: input.StartOdometer,
			Revenue:       input.Revenue,
			Status:        models.TripDraft,
		}
		return tx.Create(&trip).Error
	})
	return trip, err
}

// Dispatch moves a Draft trip to Dispatched, marking the vehicle On Trip
// and the driver On Duty in the same commit.
func (s *TripService) Dispatch(id uint) (models.Trip, error) {
	var trip models.Trip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		t, err := findTrip(tx, id)
		if err != nil {
			return err
		}
		trip = t

		driver, err := findDriver(tx, trip.DriverID)
		if err != nil {
			return err
		}
		vehicle, err := findVehicle(tx, trip.VehicleID)
		if err != nil {
			return err
		}

		if err := canDispatch(&trip, &driver, &vehicle, time.Now()); err != nil {
			return err
		}

		if err := tx.Model(&models.Trip{}).Where("id = ?", trip.ID).
			Update("status", models.TripDispatched).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Vehicle{}).Where("id = ?", trip.VehicleID).
			Update("status", models.VehicleOnTrip).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Driver{}).Where("id = ?", trip.DriverID).
			Update("status", models.DriverOnDuty).Error; err != nil {
			return err
		}
		trip.Status = models.TripDispatched
		return nil
	})
	return trip, err
}

// Complete moves a Dispatched trip to Completed, records the end odometer
// and revenue, resets the driver to Available and syncs the vehicle
// odometer to the trip's end reading (overwriting any simulator drift).
// Returns the distance covered.
func (s *TripService) Complete(id uint, endOdometer, revenue float64) (models.Trip, float64, error) {
	var trip models.Trip
	var distance float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		t, err := findTrip(tx, id)
		if err != nil {
			return err
		}
		trip = t

		if err := canComplete(&trip, endOdometer); err != nil {
			return err
		}
		distance = endOdometer - trip.StartOdometer

		if err := tx.Model(&models.Trip{}).Where("id = ?", trip.ID).
			Updates(map[string]interface{}{
				"status":       models.TripCompleted,
				"end_odometer": endOdometer,
				"revenue":      revenue,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Vehicle{}).Where("id = ?", trip.VehicleID).
			Updates(map[string]interface{}{
				"status":   models.VehicleAvailable,
				"odometer": endOdometer,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Driver{}).Where("id = ?", trip.DriverID).
			Update("status", models.DriverAvailable).Error; err != nil {
			return err
		}

		trip.Status = models.TripCompleted
		trip.EndOdometer = &endOdometer
		trip.Revenue = revenue
		return nil
	})
	return trip, distance, err
}

// Cancel moves a non-terminal trip to Cancelled. A trip that was already
// dispatched releases its vehicle and driver back to Available.
func (s *TripService) Cancel(id uint) (models.Trip, error) {
	var trip models.Trip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		t, err := findTrip(tx, id)
		if err != nil {
			return err
		}
		trip = t

		if err := canCancel(&trip); err != nil {
			return err
		}

		wasDispatched := trip.Status == models.TripDispatched
		if err := tx.Model(&models.Trip{}).Where("id = ?", trip.ID).
			Update("status", models.TripCancelled).Error; err != nil {
			return err
		}
		if wasDispatched {
			if err := releaseParties(tx, &trip); err != nil {
				return err
			}
		}
		trip.Status = models.TripCancelled
		return nil
	})
	return trip, err
}

// Delete removes a trip outright. A Dispatched trip releases its vehicle
// and driver exactly as cancellation does.
func (s *TripService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		trip, err := findTrip(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Trip{}, trip.ID).Error; err != nil {
			return err
		}
		if trip.Status == models.TripDispatched {
			return releaseParties(tx, &trip)
		}
		return nil
	})
}

// Update overwrites the mutable fields of a Draft or Dispatched trip.
// Terminal trips are immutable, and a Dispatched trip cannot swap its
// vehicle or driver.
func (s *TripService) Update(id uint, input TripInput) (models.Trip, error) {
	var trip models.Trip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		t, err := findTrip(tx, id)
		if err != nil {
			return err
		}
		trip = t

		if err := canUpdate(&trip, input.VehicleID, input.DriverID); err != nil {
			return err
		}
		if _, err := findVehicle(tx, input.VehicleID); err != nil {
			return err
		}
		if _, err := findDriver(tx, input.DriverID); err != nil {
			return err
		}

		if err := tx.Model(&models.Trip{}).Where("id = ?", trip.ID).
			Updates(map[string]interface{}{
				"vehicle_id":     input.VehicleID,
				"driver_id":      input.DriverID,
				"cargo_weight":   input.CargoWeight,
				"start_location": input.StartLocation,
				"end_location":   input.EndLocation,
				"start_odometer": input.StartOdometer,
				"revenue":        input.Revenue,
			}).Error; err != nil {
			return err
		}

		trip.VehicleID = input.VehicleID
		trip.DriverID = input.DriverID
		trip.CargoWeight = input.CargoWeight
		trip.StartLocation = input.StartLocation
		trip.EndLocation = input.EndLocation
		trip.StartOdometer = input.StartOdometer
		trip.Revenue = input.Revenue
		return nil
	})
	return trip, err
}

// List returns trips newest first, vehicle and driver preloaded, with an
// optional status filter and a free-text search over locations, status and
// the joined vehicle/driver fields.
func (s *TripService) List(status, search string) ([]models.Trip, error) {
	query := s.db.Preload("Vehicle").Preload("Driver").Order("created_at DESC")
	if status != "" && status != "All" {
		query = query.Where("status = ?", status)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		return nil, err
	}
	if search == "" {
		return trips, nil
	}

	term := strings.ToLower(search)
	filtered := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if strings.Contains(strings.ToLower(t.StartLocation), term) ||
			strings.Contains(strings.ToLower(t.EndLocation), term) ||
			strings.Contains(strings.ToLower(t.Status), term) ||
			strings.Contains(strings.ToLower(t.Vehicle.Model), term) ||
			strings.Contains(strings.ToLower(t.Vehicle.LicensePlate), term) ||
			strings.Contains(strings.ToLower(t.Driver.Name), term) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// releaseParties returns the trip's vehicle and driver to Available.
func releaseParties(tx *gorm.DB, trip *models.Trip) error {
	if err := tx.Model(&models.Vehicle{}).Where("id = ?", trip.VehicleID).
		Update("status", models.VehicleAvailable).Error; err != nil {
		return err
	}
	return tx.Model(&models.Driver{}).Where("id = ?", trip.DriverID).
		Update("status", models.DriverAvailable).Error
}

func findTrip(tx *gorm.DB, id uint) (models.Trip, error) {
	var trip models.Trip
	if err := tx.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trip, NotFoundError{Entity: "trip"}
		}
		return trip, err
	}
	return trip, nil
}

func findVehicle(tx *gorm.DB, id uint) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := tx.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vehicle, NotFoundError{Entity: "vehicle"}
		}
		return vehicle, err
	}
	return vehicle, nil
}

func findDriver(tx *gorm.DB, id uint) (models.Driver, error) {
	var driver models.Driver
	if err := tx.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return driver, NotFoundError{Entity: "driver"}
		}
		return driver, err
	}
	return driver, nil
}
