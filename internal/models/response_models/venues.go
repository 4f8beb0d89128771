package response_models

import "planmyday/internal/models/db_models"

type NearbyVenue struct {
	db_models.Venue
	DistanceMeters float64 `json:"distanceMeters"`
}
