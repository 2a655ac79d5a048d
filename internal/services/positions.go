package services

import (
	"encoding/json"
	"time"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"fleet_api/internal/models"
)

// VehiclePosition is a vehicle's last known location as a GeoJSON Point,
// ready for a tracking map.
type VehiclePosition struct {
	VehicleID    uint            `json:"vehicle_id"`
	LicensePlate string          `json:"license_plate"`
	Status       string          `json:"status"`
	Position     json.RawMessage `json:"position"`
	LastUpdated  *time.Time      `json:"last_updated"`
}

// BuildVehiclePositions converts tracked vehicles into GeoJSON point
// features (coordinates are [lng, lat]). Vehicles that have never reported
// a position are skipped.
func BuildVehiclePositions(vehicles []models.Vehicle) ([]VehiclePosition, error) {
	out := make([]VehiclePosition, 0, len(vehicles))
	for _, v := range vehicles {
		if v.CurrentLat == nil || v.CurrentLng == nil {
			continue
		}

		point := geom.NewPointFlat(geom.XY, []float64{*v.CurrentLng, *v.CurrentLat})
		raw, err := gjson.Marshal(point)
		if err != nil {
			return nil, err
		}

		out = append(out, VehiclePosition{
			VehicleID:    v.ID,
			LicensePlate: v.LicensePlate,
			Status:       v.Status,
			Position:     raw,
			LastUpdated:  v.LastUpdated,
		})
	}
	return out, nil
}
