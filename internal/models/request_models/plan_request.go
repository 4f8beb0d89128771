package request_models

import "planmyday/internal/models/db_models"

// PlanLocation uses pointers so a missing coordinate fails binding instead
// of turning into 0.
type PlanLocation struct {
	Lat     *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
	Address string   `json:"address" binding:"required"`
}

type PlanRequest struct {
	Location  *PlanLocation `json:"location" binding:"required"`
	Budget    *int          `json:"budget" binding:"required,gte=0"`
	Interests []string      `json:"interests" binding:"required"`
	Duration  string        `json:"duration" binding:"required"`
	GroupSize int           `json:"groupSize" binding:"omitempty,gte=1"`
}

// Normalize fills in defaults the client may leave out.
func (r *PlanRequest) Normalize() {
	if r.GroupSize == 0 {
		r.GroupSize = 1
	}
	if r.Interests == nil {
		r.Interests = []string{}
	}
}

// TargetLocation is the stored form of the requested location.
func (r PlanRequest) TargetLocation() db_models.Location {
	if r.Location == nil {
		return db_models.Location{}
	}
	loc := db_models.Location{Address: r.Location.Address}
	if r.Location.Lat != nil {
		loc.Lat = *r.Location.Lat
	}
	if r.Location.Lng != nil {
		loc.Lng = *r.Location.Lng
	}
	return loc
}

func (r PlanRequest) TotalBudget() int {
	if r.Budget == nil {
		return 0
	}
	return *r.Budget
}
