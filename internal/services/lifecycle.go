package services

import (
	"fmt"
	"time"

	"fleet_api/internal/models"
)

// Pure transition guards for the trip state machine. Validation runs
// entirely over rows already fetched, before any write.

const dateLayout = "2006-01-02"

// canDispatch checks Draft -> Dispatched. Only Suspended drivers are
// barred; an Off Duty driver becomes On Duty by being dispatched. A license
// expiring today is still valid ("expired" means strictly before today).
func canDispatch(trip *models.Trip, driver *models.Driver, vehicle *models.Vehicle, now time.Time) error {
	if trip.Status != models.TripDraft {
		return InvalidStateError{Msg: "only draft trips can be dispatched"}
	}
	if driver.Status == models.DriverSuspended {
		return ValidationError{Msg: fmt.Sprintf("driver is %s and cannot be dispatched", driver.Status)}
	}
	today := now.Format(dateLayout)
	if driver.ExpiryDate != "" && driver.ExpiryDate < today {
		return ValidationError{Msg: "driver license expired"}
	}
	if vehicle.Status != models.VehicleAvailable {
		return ValidationError{Msg: fmt.Sprintf("vehicle is %s, must be Available", vehicle.Status)}
	}
	if trip.CargoWeight > vehicle.MaxCapacity {
		return ValidationError{Msg: "cargo weight exceeds vehicle capacity"}
	}
	return nil
}

// canComplete checks Dispatched -> Completed. Equal odometers are a
// zero-distance trip and are accepted.
func canComplete(trip *models.Trip, endOdometer float64) error {
	if trip.Status != models.TripDispatched {
		return InvalidStateError{Msg: "only dispatched trips can be completed"}
	}
	if endOdometer < trip.StartOdometer {
		return ValidationError{Msg: "end odometer must be greater than start odometer"}
	}
	return nil
}

// canCancel checks {Draft, Dispatched} -> Cancelled.
func canCancel(trip *models.Trip) error {
	if trip.Terminal() {
		return InvalidStateError{Msg: "completed or already cancelled trips cannot be cancelled"}
	}
	return nil
}

// canUpdate gates field edits: only Draft and Dispatched trips are mutable,
// and a Dispatched trip keeps its vehicle and driver. Reassigning them
// mid-trip would strand the old pair On Trip/On Duty.
func canUpdate(trip *models.Trip, vehicleID, driverID uint) error {
	if trip.Terminal() {
		return InvalidStateError{Msg: "completed or cancelled trips cannot be updated"}
	}
	if trip.Status == models.TripDispatched &&
		(vehicleID != trip.VehicleID || driverID != trip.DriverID) {
		return InvalidStateError{Msg: "dispatched trips cannot change vehicle or driver"}
	}
	return nil
}
