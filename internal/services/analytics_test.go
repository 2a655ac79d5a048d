package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_api/internal/models"
)

func TestBuildDashboardMetricsUtilization(t *testing.T) {
	// 10 non-retired vehicles, 3 On Trip, plus 2 Retired that must not
	// count against the denominator.
	var vehicles []models.Vehicle
	for i := 0; i < 3; i++ {
		vehicles = append(vehicles, models.Vehicle{Status: models.VehicleOnTrip})
	}
	for i := 0; i < 7; i++ {
		vehicles = append(vehicles, models.Vehicle{Status: models.VehicleAvailable})
	}
	for i := 0; i < 2; i++ {
		vehicles = append(vehicles, models.Vehicle{Status: models.VehicleRetired})
	}

	metrics := BuildDashboardMetrics(vehicles, nil, nil, nil, nil, testNow)

	assert.Equal(t, 10, metrics.ActiveFleetCount)
	assert.Equal(t, "30.00%", metrics.UtilizationRate)
}

func TestBuildDashboardMetricsEmptyFleet(t *testing.T) {
	metrics := BuildDashboardMetrics(nil, nil, nil, nil, nil, testNow)

	assert.Equal(t, 0, metrics.ActiveFleetCount)
	assert.Equal(t, "0.00%", metrics.UtilizationRate)
	assert.Equal(t, "0.00", metrics.TotalRevenue)
	assert.Equal(t, "0.00", metrics.TotalProfit)
}

func TestBuildDashboardMetricsCountsAndFinancials(t *testing.T) {
	vehicles := []models.Vehicle{
		{Status: models.VehicleInShop},
		{Status: models.VehicleAvailable},
	}
	drivers := []models.Driver{
		{ExpiryDate: testNow.AddDate(0, 0, -1).Format(dateLayout)}, // expired
		{ExpiryDate: testNow.Format(dateLayout)},                   // expiring today: compliant
		{ExpiryDate: ""},                                           // no license on file
	}
	trips := []models.Trip{
		{Status: models.TripDraft, Revenue: 100},
		{Status: models.TripDispatched, Revenue: 200},
		{Status: models.TripCompleted, Revenue: 700},
	}
	fuel := []models.FuelLog{{Cost: 150}}
	maintenance := []models.MaintenanceLog{{Cost: 50}}

	metrics := BuildDashboardMetrics(vehicles, drivers, trips, fuel, maintenance, testNow)

	assert.Equal(t, 1, metrics.MaintenanceAlertsCount)
	assert.Equal(t, 2, metrics.PendingCargoCount)
	assert.Equal(t, 1, metrics.ComplianceAlertsCount)
	assert.Equal(t, "1000.00", metrics.TotalRevenue)
	assert.Equal(t, "800.00", metrics.TotalProfit)
}

func TestBuildDashboardMetricsIdempotent(t *testing.T) {
	vehicles := []models.Vehicle{{Status: models.VehicleOnTrip}, {Status: models.VehicleAvailable}}
	trips := []models.Trip{{Status: models.TripDraft, Revenue: 42}}

	first := BuildDashboardMetrics(vehicles, nil, trips, nil, nil, testNow)
	second := BuildDashboardMetrics(vehicles, nil, trips, nil, nil, testNow)

	assert.Equal(t, first, second)
}

func tripCreatedAt(ts time.Time) models.Trip {
	var trip models.Trip
	trip.CreatedAt = ts
	return trip
}

func TestBuildDailyTripCounts(t *testing.T) {
	since := testNow.AddDate(0, 0, -30)
	trips := []models.Trip{
		tripCreatedAt(testNow),
		tripCreatedAt(testNow),
		tripCreatedAt(testNow.AddDate(0, 0, -2)),
		tripCreatedAt(testNow.AddDate(0, 0, -45)), // outside the window
	}

	counts := BuildDailyTripCounts(trips, since)

	require.Len(t, counts, 2)
	// Ascending by date.
	assert.Equal(t, testNow.AddDate(0, 0, -2).Format(dateLayout), counts[0].Date)
	assert.Equal(t, 1, counts[0].Count)
	assert.Equal(t, testNow.Format(dateLayout), counts[1].Date)
	assert.Equal(t, 2, counts[1].Count)
}

func TestDailyTripsFiltersWindowInQuery(t *testing.T) {
	db, mock := mockDB(t)
	service := NewAnalyticsService(db)

	// The 30-day window belongs in the WHERE clause, not a full scan.
	mock.ExpectQuery(`SELECT (.+) FROM "trips" WHERE created_at >=`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(1, time.Now()))

	counts, err := service.DailyTrips()

	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildFinancialEvolution(t *testing.T) {
	july := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	completed := tripCreatedAt(july)
	completed.Status = models.TripCompleted
	completed.Revenue = 500

	draft := tripCreatedAt(july)
	draft.Status = models.TripDraft
	draft.Revenue = 999 // not completed: excluded

	fuel := []models.FuelLog{
		{Cost: 100, Date: "2026-07-02"},
		{Cost: 40, Date: "2026-06-15"},
	}
	maintenance := []models.MaintenanceLog{
		{Cost: 60, ServiceDate: "2026-07-20"},
	}

	evolution := BuildFinancialEvolution([]models.Trip{completed, draft}, fuel, maintenance)

	require.Len(t, evolution, 2)
	assert.Equal(t, MonthlyFinance{Month: "2026-06", Revenue: 0, Cost: 40}, evolution[0])
	assert.Equal(t, MonthlyFinance{Month: "2026-07", Revenue: 500, Cost: 160}, evolution[1])
}

func TestBuildBusinessIntelligenceRegionalEfficiency(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: 1, Region: "X", AcquisitionCost: 1000},
		{ID: 2, Region: "X", AcquisitionCost: 1000},
		{ID: 3, Region: "Y", AcquisitionCost: 1000},
	}
	trips := []models.Trip{
		{VehicleID: 1, Status: models.TripCompleted, Revenue: 100},
		{VehicleID: 2, Status: models.TripCompleted, Revenue: 300},
		{VehicleID: 3, Status: models.TripCompleted, Revenue: 50},
		{VehicleID: 1, Status: models.TripDraft, Revenue: 9999}, // not completed: excluded
	}

	bi := BuildBusinessIntelligence(vehicles, trips, nil, nil)

	require.Len(t, bi.RegionalMetrics, 2)
	// Descending by efficiency: X = 400/2 = 200, Y = 50/1 = 50.
	assert.Equal(t, "X", bi.RegionalMetrics[0].Region)
	assert.Equal(t, "200.00", bi.RegionalMetrics[0].Efficiency)
	assert.Equal(t, 400.0, bi.RegionalMetrics[0].TotalRevenue)
	assert.Equal(t, 2, bi.RegionalMetrics[0].VehicleCount)
	assert.Equal(t, "Y", bi.RegionalMetrics[1].Region)

	require.NotNil(t, bi.HighestROI)
	assert.Equal(t, uint(2), bi.HighestROI.ID)
	assert.Equal(t, 3, bi.VehicleCount)
}

func TestBuildBusinessIntelligenceROIGuard(t *testing.T) {
	vehicles := []models.Vehicle{{ID: 1, Region: "X", AcquisitionCost: 0}}
	trips := []models.Trip{{VehicleID: 1, Status: models.TripCompleted, Revenue: 500}}

	bi := BuildBusinessIntelligence(vehicles, trips, nil, nil)

	require.NotNil(t, bi.HighestROI)
	assert.Equal(t, "0.0000", bi.HighestROI.ROI)
}

func TestBuildVehicleAnalytics(t *testing.T) {
	vehicle := models.Vehicle{ID: 7, AcquisitionCost: 10000}
	trips := []models.Trip{
		{VehicleID: 7, Status: models.TripCompleted, Revenue: 4000},
		{VehicleID: 7, Status: models.TripCancelled, Revenue: 1000}, // excluded
		{VehicleID: 8, Status: models.TripCompleted, Revenue: 1000}, // other vehicle
	}
	fuel := []models.FuelLog{{VehicleID: 7, Cost: 600}}
	maintenance := []models.MaintenanceLog{{VehicleID: 7, Cost: 400}}

	analytics := BuildVehicleAnalytics(vehicle, trips, fuel, maintenance)

	assert.Equal(t, 4000.0, analytics.Revenue)
	assert.Equal(t, 600.0, analytics.FuelCost)
	assert.Equal(t, 400.0, analytics.MaintenanceCost)
	// (4000 - 1000) / 10000
	assert.Equal(t, "0.3000", analytics.ROI)
}

func TestBuildDriverMetrics(t *testing.T) {
	drivers := []models.Driver{
		{Model: gormModel(1), Name: "Asha", SafetyScore: 92},
		{Model: gormModel(2), Name: "Ravi", SafetyScore: 75},
	}
	trips := []models.Trip{
		{DriverID: 1, Status: models.TripCompleted},
		{DriverID: 1, Status: models.TripCompleted},
		{DriverID: 1, Status: models.TripDispatched},
		{DriverID: 1, Status: models.TripCancelled}, // not operational
	}

	metrics := BuildDriverMetrics(drivers, trips)

	require.Len(t, metrics, 2)
	assert.Equal(t, "Asha", metrics[0].Name)
	assert.Equal(t, 3, metrics[0].TotalTrips)
	assert.Equal(t, "67", metrics[0].CompletionRate)

	// No operational trips at all.
	assert.Equal(t, 0, metrics[1].TotalTrips)
	assert.Equal(t, "0", metrics[1].CompletionRate)
}
