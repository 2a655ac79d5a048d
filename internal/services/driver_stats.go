package services

import "fleet_api/internal/models"

// DriverWithStats decorates a driver row with trip statistics for the
// driver listing. Only operational (Dispatched/Completed) trips count;
// distance comes from completed-trip odometer deltas.
type DriverWithStats struct {
	models.Driver
	TotalTrips     int     `json:"total_trips"`
	CompletedTrips int     `json:"completed_trips"`
	TotalDistance  float64 `json:"total_distance"`
	CompletionRate int     `json:"completion_rate"`
}

// BuildDriverStats folds operational trips onto their drivers.
func BuildDriverStats(drivers []models.Driver, trips []models.Trip) []DriverWithStats {
	type acc struct {
		total     int
		completed int
		distance  float64
	}
	stats := map[uint]*acc{}
	for _, t := range trips {
		if t.Status != models.TripDispatched && t.Status != models.TripCompleted {
			continue
		}
		a, ok := stats[t.DriverID]
		if !ok {
			a = &acc{}
			stats[t.DriverID] = a
		}
		a.total++
		if t.Status == models.TripCompleted {
			a.completed++
			if t.EndOdometer != nil {
				if d := *t.EndOdometer - t.StartOdometer; d > 0 {
					a.distance += d
				}
			}
		}
	}

	out := make([]DriverWithStats, 0, len(drivers))
	for _, d := range drivers {
		row := DriverWithStats{Driver: d}
		if a, ok := stats[d.ID]; ok {
			row.TotalTrips = a.total
			row.CompletedTrips = a.completed
			row.TotalDistance = a.distance
			if a.total > 0 {
				row.CompletionRate = int(float64(a.completed)/float64(a.total)*100 + 0.5)
			}
		}
		out = append(out, row)
	}
	return out
}
