package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_api/internal/models"
	"fleet_api/internal/services"
)

type TripController struct {
	service *services.TripService
}

func NewTripController(service *services.TripService) *TripController {
	return &TripController{service: service}
}

// CreateTrip inserts a new trip in Draft.
func (tc *TripController) CreateTrip(c *gin.Context) {
	var input services.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := tc.service.CreateDraft(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// ListTrips returns trips with optional status filter and search term.
func (tc *TripController) ListTrips(c *gin.Context) {
	trips, err := tc.service.List(c.Query("status"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// DispatchTrip runs the Draft -> Dispatched transition.
func (tc *TripController) DispatchTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	trip, err := tc.service.Dispatch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// FinishTrip runs Dispatched -> Completed, recording end odometer and
// revenue; the response carries the distance covered.
func (tc *TripController) FinishTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body struct {
		EndOdometer *float64 `json:"end_odometer" binding:"required"`
		Revenue     float64  `json:"revenue"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, distance, err := tc.service.Complete(id, *body.EndOdometer, body.Revenue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, struct {
		models.Trip
		Distance float64 `json:"distance"`
	}{Trip: trip, Distance: distance})
}

// CancelTrip runs {Draft, Dispatched} -> Cancelled.
func (tc *TripController) CancelTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	trip, err := tc.service.Cancel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTrip overwrites the mutable fields of a non-terminal trip.
func (tc *TripController) UpdateTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input services.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := tc.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) DeleteTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := tc.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
