package request_models

type NearbyVenuesQuery struct {
	Lat    *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lng    *float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	Radius float64  `form:"radius" binding:"omitempty,gt=0"`
	Limit  int      `form:"limit" binding:"omitempty,gte=1,lte=100"`
}
