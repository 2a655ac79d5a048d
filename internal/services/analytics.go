package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"fleet_api/internal/models"
)

// AnalyticsService fetches raw rows and folds them in memory. Every metric
// is recomputed from a full scan on each request; the folds are pure
// functions so identical inputs always produce identical output.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// DashboardMetrics is the landing-page KPI set. Rates and money are
// pre-formatted strings, matching what the dashboard renders.
type DashboardMetrics struct {
	ActiveFleetCount       int    `json:"activeFleetCount"`
	MaintenanceAlertsCount int    `json:"maintenanceAlertsCount"`
	UtilizationRate        string `json:"utilizationRate"`
	PendingCargoCount      int    `json:"pendingCargoCount"`
	ComplianceAlertsCount  int    `json:"complianceAlertsCount"`
	TotalRevenue           string `json:"totalRevenue"`
	TotalProfit            string `json:"totalProfit"`
}

// BuildDashboardMetrics folds the full row sets into the dashboard KPIs.
// Utilization is On Trip over non-Retired vehicles; a license is
// non-compliant when its expiry date is strictly before today.
func BuildDashboardMetrics(vehicles []models.Vehicle, drivers []models.Driver, trips []models.Trip,
	fuel []models.FuelLog, maintenance []models.MaintenanceLog, now time.Time) DashboardMetrics {

	activeFleet := 0
	inShop := 0
	onTrip := 0
	for _, v := range vehicles {
		if v.Status != models.VehicleRetired {
			activeFleet++
		}
		if v.Status == models.VehicleInShop {
			inShop++
		}
		if v.Status == models.VehicleOnTrip {
			onTrip++
		}
	}

	utilization := 0.0
	if activeFleet > 0 {
		utilization = float64(onTrip) / float64(activeFleet) * 100
	}

	pendingCargo := 0
	totalRevenue := 0.0
	for _, t := range trips {
		if t.Status == models.TripDraft || t.Status == models.TripDispatched {
			pendingCargo++
		}
		totalRevenue += t.Revenue
	}

	today := now.Format(dateLayout)
	expiredLicenses := 0
	for _, d := range drivers {
		if d.ExpiryDate != "" && d.ExpiryDate < today {
			expiredLicenses++
		}
	}

	totalCost := 0.0
	for _, f := range fuel {
		totalCost += f.Cost
	}
	for _, m := range maintenance {
		totalCost += m.Cost
	}

	return DashboardMetrics{
		ActiveFleetCount:       activeFleet,
		MaintenanceAlertsCount: inShop,
		UtilizationRate:        fmt.Sprintf("%.2f%%", utilization),
		PendingCargoCount:      pendingCargo,
		ComplianceAlertsCount:  expiredLicenses,
		TotalRevenue:           fmt.Sprintf("%.2f", totalRevenue),
		TotalProfit:            fmt.Sprintf("%.2f", totalRevenue-totalCost),
	}
}

func (s *AnalyticsService) Dashboard() (DashboardMetrics, error) {
	var (
		vehicles    []models.Vehicle
		drivers     []models.Driver
		trips       []models.Trip
		fuel        []models.FuelLog
		maintenance []models.MaintenanceLog
	)
	if err := s.db.Find(&vehicles).Error; err != nil {
		return DashboardMetrics{}, err
	}
	if err := s.db.Find(&drivers).Error; err != nil {
		return DashboardMetrics{}, err
	}
	if err := s.db.Find(&trips).Error; err != nil {
		return DashboardMetrics{}, err
	}
	if err := s.db.Find(&fuel).Error; err != nil {
		return DashboardMetrics{}, err
	}
	if err := s.db.Find(&maintenance).Error; err != nil {
		return DashboardMetrics{}, err
	}
	return BuildDashboardMetrics(vehicles, drivers, trips, fuel, maintenance, time.Now()), nil
}

type DailyTripCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BuildDailyTripCounts groups trips created on or after since by calendar
// day, ascending.
func BuildDailyTripCounts(trips []models.Trip, since time.Time) []DailyTripCount {
	counts := map[string]int{}
	for _, t := range trips {
		if t.CreatedAt.Before(since) {
			continue
		}
		counts[t.CreatedAt.Format(dateLayout)]++
	}

	out := make([]DailyTripCount, 0, len(counts))
	for date, count := range counts {
		out = append(out, DailyTripCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (s *AnalyticsService) DailyTrips() ([]DailyTripCount, error) {
	since := time.Now().AddDate(0, 0, -30)
	var trips []models.Trip
	if err := s.db.Where("created_at >= ?", since).Find(&trips).Error; err != nil {
		return nil, err
	}
	return BuildDailyTripCounts(trips, since), nil
}

type MonthlyFinance struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

// BuildFinancialEvolution merges completed-trip revenue and fuel plus
// maintenance cost into one series per month, ascending by month key
// (lexicographic order is chronological for YYYY-MM).
func BuildFinancialEvolution(trips []models.Trip, fuel []models.FuelLog, maintenance []models.MaintenanceLog) []MonthlyFinance {
	evolution := map[string]*MonthlyFinance{}
	bucket := func(month string) *MonthlyFinance {
		if m, ok := evolution[month]; ok {
			return m
		}
		m := &MonthlyFinance{Month: month}
		evolution[month] = m
		return m
	}

	for _, t := range trips {
		if t.Status != models.TripCompleted {
			continue
		}
		bucket(t.CreatedAt.Format("2006-01")).Revenue += t.Revenue
	}
	for _, f := range fuel {
		if len(f.Date) >= 7 {
			bucket(f.Date[:7]).Cost += f.Cost
		}
	}
	for _, m := range maintenance {
		if len(m.ServiceDate) >= 7 {
			bucket(m.ServiceDate[:7]).Cost += m.Cost
		}
	}

	out := make([]MonthlyFinance, 0, len(evolution))
	for _, m := range evolution {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func (s *AnalyticsService) FinancialEvolution() ([]MonthlyFinance, error) {
	var (
		trips       []models.Trip
		fuel        []models.FuelLog
		maintenance []models.MaintenanceLog
	)
	if err := s.db.Find(&trips).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&fuel).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&maintenance).Error; err != nil {
		return nil, err
	}
	return BuildFinancialEvolution(trips, fuel, maintenance), nil
}

// VehicleBI is a vehicle's financial summary for the BI endpoint. Revenue
// counts Completed trips only.
type VehicleBI struct {
	ID           uint    `json:"id"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"license_plate"`
	Region       string  `json:"region"`
	Revenue      float64 `json:"revenue"`
	TotalCost    float64 `json:"totalCost"`
	ROI          string  `json:"roi"`

	roi float64
}

type RegionalMetric struct {
	Region       string  `json:"region"`
	TotalRevenue float64 `json:"totalRevenue"`
	VehicleCount int     `json:"vehicleCount"`
	Efficiency   string  `json:"efficiency"` // revenue per vehicle

	efficiency float64
}

type BusinessIntelligence struct {
	HighestROI      *VehicleBI       `json:"highestROI"`
	RegionalMetrics []RegionalMetric `json:"regionalMetrics"`
	VehicleCount    int              `json:"vehicleCount"`
}

// roiOf guards division: a vehicle with no recorded acquisition cost has
// ROI 0 rather than infinity.
func roiOf(revenue, cost, acquisitionCost float64) float64 {
	if acquisitionCost <= 0 {
		return 0
	}
	return (revenue - cost) / acquisitionCost
}

// BuildBusinessIntelligence computes per-vehicle ROI, the highest-ROI
// vehicle and regional efficiency (revenue per vehicle, descending).
func BuildBusinessIntelligence(vehicles []models.Vehicle, trips []models.Trip,
	fuel []models.FuelLog, maintenance []models.MaintenanceLog) BusinessIntelligence {

	revenueByVehicle := map[uint]float64{}
	for _, t := range trips {
		if t.Status == models.TripCompleted {
			revenueByVehicle[t.VehicleID] += t.Revenue
		}
	}
	costByVehicle := map[uint]float64{}
	for _, f := range fuel {
		costByVehicle[f.VehicleID] += f.Cost
	}
	for _, m := range maintenance {
		costByVehicle[m.VehicleID] += m.Cost
	}

	processed := make([]VehicleBI, 0, len(vehicles))
	regions := map[string]*RegionalMetric{}
	for _, v := range vehicles {
		revenue := revenueByVehicle[v.ID]
		cost := costByVehicle[v.ID]
		roi := roiOf(revenue, cost, v.AcquisitionCost)
		processed = append(processed, VehicleBI{
			ID:           v.ID,
			Model:        v.Model,
			LicensePlate: v.LicensePlate,
			Region:       v.Region,
			Revenue:      revenue,
			TotalCost:    cost,
			ROI:          fmt.Sprintf("%.4f", roi),
			roi:          roi,
		})

		r, ok := regions[v.Region]
		if !ok {
			r = &RegionalMetric{Region: v.Region}
			regions[v.Region] = r
		}
		r.TotalRevenue += revenue
		r.VehicleCount++
	}

	var highest *VehicleBI
	for i := range processed {
		if highest == nil || processed[i].roi > highest.roi {
			highest = &processed[i]
		}
	}

	regional := make([]RegionalMetric, 0, len(regions))
	for _, r := range regions {
		if r.VehicleCount > 0 {
			r.efficiency = r.TotalRevenue / float64(r.VehicleCount)
		}
		r.Efficiency = fmt.Sprintf("%.2f", r.efficiency)
		regional = append(regional, *r)
	}
	sort.SliceStable(regional, func(i, j int) bool {
		if regional[i].efficiency != regional[j].efficiency {
			return regional[i].efficiency > regional[j].efficiency
		}
		return regional[i].Region < regional[j].Region
	})

	return BusinessIntelligence{
		HighestROI:      highest,
		RegionalMetrics: regional,
		VehicleCount:    len(processed),
	}
}

func (s *AnalyticsService) BusinessIntelligence() (BusinessIntelligence, error) {
	var (
		vehicles    []models.Vehicle
		trips       []models.Trip
		fuel        []models.FuelLog
		maintenance []models.MaintenanceLog
	)
	if err := s.db.Find(&vehicles).Error; err != nil {
		return BusinessIntelligence{}, err
	}
	if err := s.db.Find(&trips).Error; err != nil {
		return BusinessIntelligence{}, err
	}
	if err := s.db.Find(&fuel).Error; err != nil {
		return BusinessIntelligence{}, err
	}
	if err := s.db.Find(&maintenance).Error; err != nil {
		return BusinessIntelligence{}, err
	}
	return BuildBusinessIntelligence(vehicles, trips, fuel, maintenance), nil
}

// VehicleAnalytics is the single-vehicle ROI breakdown.
type VehicleAnalytics struct {
	Revenue         float64 `json:"revenue"`
	FuelCost        float64 `json:"fuelCost"`
	MaintenanceCost float64 `json:"maintenanceCost"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	ROI             string  `json:"roi"`
}

// BuildVehicleAnalytics folds one vehicle's Completed-trip revenue against
// its fuel and maintenance spend.
func BuildVehicleAnalytics(vehicle models.Vehicle, trips []models.Trip,
	fuel []models.FuelLog, maintenance []models.MaintenanceLog) VehicleAnalytics {

	revenue := 0.0
	for _, t := range trips {
		if t.VehicleID == vehicle.ID && t.Status == models.TripCompleted {
			revenue += t.Revenue
		}
	}
	fuelCost := 0.0
	for _, f := range fuel {
		if f.VehicleID == vehicle.ID {
			fuelCost += f.Cost
		}
	}
	maintCost := 0.0
	for _, m := range maintenance {
		if m.VehicleID == vehicle.ID {
			maintCost += m.Cost
		}
	}

	return VehicleAnalytics{
		Revenue:         revenue,
		FuelCost:        fuelCost,
		MaintenanceCost: maintCost,
		AcquisitionCost: vehicle.AcquisitionCost,
		ROI:             fmt.Sprintf("%.4f", roiOf(revenue, fuelCost+maintCost, vehicle.AcquisitionCost)),
	}
}

func (s *AnalyticsService) VehicleAnalytics(vehicleID uint) (VehicleAnalytics, error) {
	vehicle, err := findVehicle(s.db, vehicleID)
	if err != nil {
		return VehicleAnalytics{}, err
	}
	var (
		trips       []models.Trip
		fuel        []models.FuelLog
		maintenance []models.MaintenanceLog
	)
	if err := s.db.Where("vehicle_id = ?", vehicleID).Find(&trips).Error; err != nil {
		return VehicleAnalytics{}, err
	}
	if err := s.db.Where("vehicle_id = ?", vehicleID).Find(&fuel).Error; err != nil {
		return VehicleAnalytics{}, err
	}
	if err := s.db.Where("vehicle_id = ?", vehicleID).Find(&maintenance).Error; err != nil {
		return VehicleAnalytics{}, err
	}
	return BuildVehicleAnalytics(vehicle, trips, fuel, maintenance), nil
}

type DriverMetric struct {
	Name           string `json:"name"`
	SafetyScore    int    `json:"safetyScore"`
	CompletionRate string `json:"completionRate"`
	TotalTrips     int    `json:"totalTrips"`
}

// BuildDriverMetrics computes per-driver completion rate over operational
// (Dispatched + Completed) trips.
func BuildDriverMetrics(drivers []models.Driver, trips []models.Trip) []DriverMetric {
	operational := map[uint]int{}
	completed := map[uint]int{}
	for _, t := range trips {
		switch t.Status {
		case models.TripDispatched:
			operational[t.DriverID]++
		case models.TripCompleted:
			operational[t.DriverID]++
			completed[t.DriverID]++
		}
	}

	metrics := make([]DriverMetric, 0, len(drivers))
	for _, d := range drivers {
		total := operational[d.ID]
		rate := "0"
		if total > 0 {
			rate = fmt.Sprintf("%.0f", float64(completed[d.ID])/float64(total)*100)
		}
		metrics = append(metrics, DriverMetric{
			Name:           d.Name,
			SafetyScore:    d.SafetyScore,
			CompletionRate: rate,
			TotalTrips:     total,
		})
	}
	return metrics
}

func (s *AnalyticsService) DriverMetrics() ([]DriverMetric, error) {
	var drivers []models.Driver
	if err := s.db.Order("name ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	var trips []models.Trip
	if err := s.db.Find(&trips).Error; err != nil {
		return nil, err
	}
	return BuildDriverMetrics(drivers, trips), nil
}

// FinancialReport is the export payload: all completed trips plus a
// generation stamp. Formatting beyond JSON is out of scope.
type FinancialReport struct {
	Message    string        `json:"message"`
	Timestamp  string        `json:"timestamp"`
	TripCount  int           `json:"tripCount"`
	ReportData []models.Trip `json:"reportData"`
}

func (s *AnalyticsService) ExportFinancialReport() (FinancialReport, error) {
	var trips []models.Trip
	if err := s.db.Where("status = ?", models.TripCompleted).Find(&trips).Error; err != nil {
		return FinancialReport{}, err
	}
	return FinancialReport{
		Message:    "Financial report generated",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TripCount:  len(trips),
		ReportData: trips,
	}, nil
}
