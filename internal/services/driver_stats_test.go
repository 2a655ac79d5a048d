package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleet_api/internal/models"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func odometer(v float64) *float64 { return &v }

func TestBuildDriverStats(t *testing.T) {
	drivers := []models.Driver{
		{Model: gormModel(1), Name: "Asha"},
		{Model: gormModel(2), Name: "Ravi"},
	}
	trips := []models.Trip{
		{DriverID: 1, Status: models.TripCompleted, StartOdometer: 1000, EndOdometer: odometer(1250)},
		{DriverID: 1, Status: models.TripCompleted, StartOdometer: 1250, EndOdometer: odometer(1300)},
		{DriverID: 1, Status: models.TripDispatched, StartOdometer: 1300},
	}

	stats := BuildDriverStats(drivers, trips)

	require.Len(t, stats, 2)
	assert.Equal(t, 3, stats[0].TotalTrips)
	assert.Equal(t, 2, stats[0].CompletedTrips)
	assert.Equal(t, 300.0, stats[0].TotalDistance)
	assert.Equal(t, 67, stats[0].CompletionRate)

	assert.Equal(t, 0, stats[1].TotalTrips)
	assert.Equal(t, 0, stats[1].CompletionRate)
}

func TestBuildDriverStatsIgnoresNonOperationalTrips(t *testing.T) {
	drivers := []models.Driver{{Model: gormModel(1), Name: "Asha"}}
	trips := []models.Trip{
		{DriverID: 1, Status: models.TripDraft},
		{DriverID: 1, Status: models.TripCancelled},
	}

	stats := BuildDriverStats(drivers, trips)

	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].TotalTrips)
	assert.Equal(t, 0.0, stats[0].TotalDistance)
}
