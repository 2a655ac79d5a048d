package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet_api/internal/models"
)

// mockDB opens GORM over a sqlmock connection so the transactional paths
// run against scripted SQL.
func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return db, mock
}

func TestDispatchCommitsAllThreeRows(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "vehicle_id", "driver_id", "cargo_weight", "start_odometer", "status"}).
			AddRow(1, 2, 3, 500.0, 1000.0, models.TripDraft))
	mock.ExpectQuery(`SELECT (.+) FROM "drivers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "expiry_date"}).
			AddRow(3, models.DriverAvailable, "2099-01-01"))
	mock.ExpectQuery(`SELECT (.+) FROM "vehicles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "max_capacity"}).
			AddRow(2, models.VehicleAvailable, 1000.0))
	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "vehicles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "drivers" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trip, err := service.Dispatch(1)

	require.NoError(t, err)
	assert.Equal(t, models.TripDispatched, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatchTripNotFoundRollsBack(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := service.Dispatch(99)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "trip", notFound.Entity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRecordsDistanceAndSyncsOdometer(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "vehicle_id", "driver_id", "start_odometer", "status"}).
			AddRow(1, 2, 3, 1000.0, models.TripDispatched))
	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "vehicles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "drivers" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trip, distance, err := service.Complete(1, 1250, 900)

	require.NoError(t, err)
	assert.Equal(t, 250.0, distance)
	assert.Equal(t, models.TripCompleted, trip.Status)
	require.NotNil(t, trip.EndOdometer)
	assert.Equal(t, 1250.0, *trip.EndOdometer)
	assert.Equal(t, 900.0, trip.Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDispatchedTripRejectsReassignment(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	// Reassigning a dispatched trip would leave vehicle 2 On Trip and
	// driver 3 On Duty with no trip referencing them. The whole update
	// must roll back with no vehicle or driver writes.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "driver_id", "status"}).
			AddRow(1, 2, 3, models.TripDispatched))
	mock.ExpectRollback()

	_, err := service.Update(1, TripInput{VehicleID: 5, DriverID: 6})

	var invalidState InvalidStateError
	require.ErrorAs(t, err, &invalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCompletedTripRollsBack(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(1, models.TripCompleted))
	mock.ExpectRollback()

	_, err := service.Cancel(1)

	var invalidState InvalidStateError
	require.ErrorAs(t, err, &invalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelDraftDoesNotTouchVehicleOrDriver(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "driver_id", "status"}).
			AddRow(1, 2, 3, models.TripDraft))
	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trip, err := service.Cancel(1)

	require.NoError(t, err)
	assert.Equal(t, models.TripCancelled, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelDispatchedReleasesVehicleAndDriver(t *testing.T) {
	db, mock := mockDB(t)
	service := NewTripService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "driver_id", "status"}).
			AddRow(1, 2, 3, models.TripDispatched))
	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "vehicles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "drivers" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trip, err := service.Cancel(1)

	require.NoError(t, err)
	assert.Equal(t, models.TripCancelled, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
