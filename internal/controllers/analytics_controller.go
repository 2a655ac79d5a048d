package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_api/internal/services"
)

type AnalyticsController struct {
	service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{service: service}
}

func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	metrics, err := ac.service.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (ac *AnalyticsController) DailyTrips(c *gin.Context) {
	counts, err := ac.service.DailyTrips()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (ac *AnalyticsController) FinancialEvolution(c *gin.Context) {
	evolution, err := ac.service.FinancialEvolution()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evolution)
}

func (ac *AnalyticsController) DriverMetrics(c *gin.Context) {
	metrics, err := ac.service.DriverMetrics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (ac *AnalyticsController) BusinessIntelligence(c *gin.Context) {
	bi, err := ac.service.BusinessIntelligence()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bi)
}

func (ac *AnalyticsController) VehicleAnalytics(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	analytics, err := ac.service.VehicleAnalytics(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (ac *AnalyticsController) Export(c *gin.Context) {
	report, err := ac.service.ExportFinancialReport()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
