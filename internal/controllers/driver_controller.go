package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_api/internal/models"
	"fleet_api/internal/services"
)

type DriverController struct {
	db *gorm.DB
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{db: db}
}

// CreateDriver registers a new driver; always starts Off Duty.
func (dc *DriverController) CreateDriver(c *gin.Context) {
	var input struct {
		Name            string `json:"name" binding:"required"`
		LicenseNumber   string `json:"license_number" binding:"required"`
		LicenseCategory string `json:"license_category"`
		ExpiryDate      string `json:"expiry_date" binding:"required"`
		SafetyScore     int    `json:"safety_score"`
		Region          string `json:"region"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Region == "" {
		input.Region = "Main"
	}

	driver := models.Driver{
		Name:            input.Name,
		LicenseNumber:   input.LicenseNumber,
		LicenseCategory: input.LicenseCategory,
		ExpiryDate:      input.ExpiryDate,
		SafetyScore:     input.SafetyScore,
		Region:          input.Region,
		Status:          models.DriverOffDuty,
	}
	if err := dc.db.Create(&driver).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// ListDrivers returns drivers enriched with trip statistics, filtered by
// region and an optional search over the driver columns.
func (dc *DriverController) ListDrivers(c *gin.Context) {
	query := dc.db.Order("name ASC")
	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}

	var drivers []models.Driver
	if err := query.Find(&drivers).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var trips []models.Trip
	if err := dc.db.Where("status IN ?", []string{models.TripDispatched, models.TripCompleted}).
		Find(&trips).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := services.BuildDriverStats(drivers, trips)

	if search := c.Query("search"); search != "" {
		term := strings.ToLower(search)
		filtered := make([]services.DriverWithStats, 0, len(result))
		for _, d := range result {
			if strings.Contains(strings.ToLower(d.Name), term) ||
				strings.Contains(strings.ToLower(d.LicenseNumber), term) ||
				strings.Contains(strings.ToLower(d.LicenseCategory), term) ||
				strings.Contains(strings.ToLower(d.Region), term) ||
				strings.Contains(strings.ToLower(d.Status), term) {
				filtered = append(filtered, d)
			}
		}
		result = filtered
	}

	c.JSON(http.StatusOK, result)
}

// UpdateDriver overwrites driver fields from the request body.
func (dc *DriverController) UpdateDriver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := dc.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	driver.ID = id

	if err := dc.db.Save(&driver).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, driver)
}

// UpdateDriverStatus changes only the status field, enum-validated.
func (dc *DriverController) UpdateDriverStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !models.ValidDriverStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"Invalid status. Must be one of: %s, %s, %s, %s",
			models.DriverOnDuty, models.DriverOffDuty, models.DriverAvailable, models.DriverSuspended,
		)})
		return
	}

	var driver models.Driver
	if err := dc.db.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}

	if err := dc.db.Model(&driver).Update("status", body.Status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	driver.Status = body.Status
	c.JSON(http.StatusOK, driver)
}
