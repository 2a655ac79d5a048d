// Package simulator keeps On Trip vehicles visibly moving. It is a
// liveness generator, not a navigation model: no routes, no destinations,
// no coupling to the trip lifecycle.
package simulator

import (
	"context"
	"math"
	"math/rand"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleet_api/internal/models"
)

const (
	// Fallback position for vehicles that have never reported one (Mumbai).
	defaultLat = 19.0760
	defaultLng = 72.8777

	// Perturbation spread: (rand-0.5)*0.02 gives roughly 1-2 km per tick.
	deltaSpread = 0.02

	// Flat-earth approximation: one degree is roughly 111 km.
	kmPerDegree = 111

	// How many Available vehicles to promote when nothing is moving.
	promoteLimit = 3
)

// Simulator perturbs On Trip vehicle positions on a fixed interval. The
// random source and interval are injected so ticks are deterministic in
// tests.
type Simulator struct {
	db       *gorm.DB
	interval time.Duration
	rng      *rand.Rand
}

func New(db *gorm.DB, interval time.Duration, rng *rand.Rand) *Simulator {
	return &Simulator{db: db, interval: interval, rng: rng}
}

// Run ticks immediately and then on every interval until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	logrus.Infof("starting fleet simulator (interval %s)", s.interval)
	s.Tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Info("fleet simulator stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick moves every On Trip vehicle a small random step, accumulating the
// approximate distance onto its odometer. If nothing is On Trip it
// promotes a few Available vehicles so the fleet stays visibly live.
func (s *Simulator) Tick() {
	var vehicles []models.Vehicle
	if err := s.db.Where("status = ?", models.VehicleOnTrip).Find(&vehicles).Error; err != nil {
		logrus.WithError(err).Error("simulator: fetching vehicles failed")
		return
	}

	if len(vehicles) == 0 {
		s.promoteIdle()
		return
	}

	logrus.Debugf("simulator: moving %d vehicles", len(vehicles))
	for _, v := range vehicles {
		lat, lng := 0.0, 0.0
		if v.CurrentLat != nil {
			lat = *v.CurrentLat
		}
		if v.CurrentLng != nil {
			lng = *v.CurrentLng
		}

		newLat, newLng, distance := Move(lat, lng, s.rng)
		now := time.Now()
		err := s.db.Model(&models.Vehicle{}).Where("id = ?", v.ID).
			Updates(map[string]interface{}{
				"current_lat":  newLat,
				"current_lng":  newLng,
				"odometer":     v.Odometer + distance,
				"last_updated": now,
			}).Error
		if err != nil {
			logrus.WithError(err).Errorf("simulator: updating vehicle %d failed", v.ID)
		}
	}
}

// promoteIdle flips up to promoteLimit Available vehicles to On Trip.
func (s *Simulator) promoteIdle() {
	var available []models.Vehicle
	if err := s.db.Where("status = ?", models.VehicleAvailable).
		Limit(promoteLimit).Find(&available).Error; err != nil {
		logrus.WithError(err).Error("simulator: fetching available vehicles failed")
		return
	}
	if len(available) == 0 {
		return
	}

	ids := make([]uint, 0, len(available))
	for _, v := range available {
		ids = append(ids, v.ID)
	}
	logrus.Infof("simulator: activating %d vehicles for movement", len(ids))
	if err := s.db.Model(&models.Vehicle{}).Where("id IN ?", ids).
		Update("status", models.VehicleOnTrip).Error; err != nil {
		logrus.WithError(err).Error("simulator: activating vehicles failed")
	}
}

// Move perturbs a position by a small random delta and returns the new
// coordinates plus the flat-earth distance covered in km. Unset (zero)
// coordinates start from the default position.
func Move(lat, lng float64, rng *rand.Rand) (newLat, newLng, distanceKm float64) {
	if lat == 0 {
		lat = defaultLat
	}
	if lng == 0 {
		lng = defaultLng
	}

	deltaLat := (rng.Float64() - 0.5) * deltaSpread
	deltaLng := (rng.Float64() - 0.5) * deltaSpread

	return lat + deltaLat,
		lng + deltaLng,
		math.Sqrt(deltaLat*deltaLat+deltaLng*deltaLng) * kmPerDegree
}
