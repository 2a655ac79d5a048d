package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_api/internal/models"
)

// LogController handles maintenance and fuel logs.
type LogController struct {
	db *gorm.DB
}

func NewLogController(db *gorm.DB) *LogController {
	return &LogController{db: db}
}

// AddMaintenanceLog inserts a service record and puts the vehicle In Shop
// in the same commit.
func (lc *LogController) AddMaintenanceLog(c *gin.Context) {
	var input struct {
		VehicleID   uint    `json:"vehicle_id" binding:"required"`
		ServiceType string  `json:"service_type" binding:"required"`
		Cost        float64 `json:"cost"`
		ServiceDate string  `json:"service_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.MaintenanceLog{
		VehicleID:   input.VehicleID,
		ServiceType: input.ServiceType,
		Cost:        input.Cost,
		ServiceDate: input.ServiceDate,
	}
	err := lc.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, input.VehicleID).Error; err != nil {
			return err
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.Model(&vehicle).Update("status", models.VehicleInShop).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetMaintenanceLogs returns maintenance entries newest first, with an
// optional service-type filter and search over the joined vehicle fields.
func (lc *LogController) GetMaintenanceLogs(c *gin.Context) {
	query := lc.db.Preload("Vehicle").Order("service_date DESC")
	if serviceType := c.Query("type"); serviceType != "" && serviceType != "All" {
		query = query.Where("service_type = ?", serviceType)
	}

	var logs []models.MaintenanceLog
	if err := query.Find(&logs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if search := c.Query("search"); search != "" {
		term := strings.ToLower(search)
		filtered := make([]models.MaintenanceLog, 0, len(logs))
		for _, m := range logs {
			if strings.Contains(strings.ToLower(m.ServiceType), term) ||
				strings.Contains(strings.ToLower(m.Vehicle.Model), term) ||
				strings.Contains(strings.ToLower(m.Vehicle.LicensePlate), term) {
				filtered = append(filtered, m)
			}
		}
		logs = filtered
	}

	c.JSON(http.StatusOK, logs)
}

func (lc *LogController) UpdateMaintenanceLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var entry models.MaintenanceLog
	if err := lc.db.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "maintenance log not found"})
		return
	}

	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	entry.ID = id

	if err := lc.db.Save(&entry).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (lc *LogController) DeleteMaintenanceLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := lc.db.Delete(&models.MaintenanceLog{}, id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance log deleted"})
}

// AddFuelLog inserts a fuel purchase record.
func (lc *LogController) AddFuelLog(c *gin.Context) {
	var input struct {
		VehicleID uint    `json:"vehicle_id" binding:"required"`
		Liters    float64 `json:"liters"`
		Cost      float64 `json:"cost"`
		Date      string  `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.FuelLog{
		VehicleID: input.VehicleID,
		Liters:    input.Liters,
		Cost:      input.Cost,
		Date:      input.Date,
	}
	if err := lc.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetFuelLogs returns fuel entries newest first with an optional search
// over the joined vehicle fields.
func (lc *LogController) GetFuelLogs(c *gin.Context) {
	var logs []models.FuelLog
	if err := lc.db.Preload("Vehicle").Order("date DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if search := c.Query("search"); search != "" {
		term := strings.ToLower(search)
		filtered := make([]models.FuelLog, 0, len(logs))
		for _, f := range logs {
			if strings.Contains(strings.ToLower(f.Vehicle.Model), term) ||
				strings.Contains(strings.ToLower(f.Vehicle.LicensePlate), term) {
				filtered = append(filtered, f)
			}
		}
		logs = filtered
	}

	c.JSON(http.StatusOK, logs)
}

func (lc *LogController) UpdateFuelLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var entry models.FuelLog
	if err := lc.db.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "fuel log not found"})
		return
	}

	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	entry.ID = id

	if err := lc.db.Save(&entry).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (lc *LogController) DeleteFuelLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := lc.db.Delete(&models.FuelLog{}, id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fuel log deleted"})
}
