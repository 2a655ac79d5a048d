package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_api/internal/models"
	"fleet_api/internal/services"
)

type VehicleController struct {
	db        *gorm.DB
	analytics *services.AnalyticsService
}

func NewVehicleController(db *gorm.DB, analytics *services.AnalyticsService) *VehicleController {
	return &VehicleController{db: db, analytics: analytics}
}

// CreateVehicle registers a new vehicle; always starts Available.
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var input struct {
		Model           string  `json:"model" binding:"required"`
		LicensePlate    string  `json:"license_plate" binding:"required"`
		MaxCapacity     float64 `json:"max_capacity"`
		Odometer        float64 `json:"odometer"`
		AcquisitionCost float64 `json:"acquisition_cost"`
		Region          string  `json:"region"`
		VehicleType     string  `json:"vehicle_type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	if input.Region == "" {
		input.Region = "Main"
	}
	if input.VehicleType == "" {
		input.VehicleType = "Truck"
	}

	vehicle := models.Vehicle{
		Model:           input.Model,
		LicensePlate:    input.LicensePlate,
		MaxCapacity:     input.MaxCapacity,
		Odometer:        input.Odometer,
		AcquisitionCost: input.AcquisitionCost,
		Region:          input.Region,
		VehicleType:     input.VehicleType,
		Status:          models.VehicleAvailable,
	}
	if err := vc.db.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// ListVehicles returns vehicles filtered by region/type/status with an
// optional case-insensitive search across text columns.
func (vc *VehicleController) ListVehicles(c *gin.Context) {
	query := vc.db.Model(&models.Vehicle{})
	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}
	if vehicleType := c.Query("vehicle_type"); vehicleType != "" {
		query = query.Where("vehicle_type = ?", vehicleType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"model ILIKE ? OR license_plate ILIKE ? OR region ILIKE ? OR status ILIKE ?",
			term, term, term, term,
		)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// VehiclePositions returns the last known location of every tracked
// vehicle as a GeoJSON point.
func (vc *VehicleController) VehiclePositions(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.db.Where("current_lat IS NOT NULL AND current_lng IS NOT NULL").
		Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	positions, err := services.BuildVehiclePositions(vehicles)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

// UpdateVehicle overwrites vehicle fields from the request body.
func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	vehicle.ID = id

	if err := vc.db.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	if err := vc.db.Delete(&vehicle).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

// RetireVehicle marks a vehicle Retired, dropping it from the active fleet.
func (vc *VehicleController) RetireVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	if err := vc.db.Model(&vehicle).Update("status", models.VehicleRetired).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vehicle.Status = models.VehicleRetired
	c.JSON(http.StatusOK, vehicle)
}

// VehicleAnalytics returns the per-vehicle ROI breakdown.
func (vc *VehicleController) VehicleAnalytics(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	analytics, err := vc.analytics.VehicleAnalytics(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
