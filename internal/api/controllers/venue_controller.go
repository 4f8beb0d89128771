package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"planmyday/internal/models/request_models"
	"planmyday/internal/services"
	"planmyday/pkg/utils"
)

type VenueController struct {
	venueService services.VenueServiceInterface
}

func NewVenueController(venueService services.VenueServiceInterface) *VenueController {
	return &VenueController{
		venueService: venueService,
	}
}

func (v *VenueController) GetVenueByID(c *gin.Context) {
	venueID := c.Param("id")
	if venueID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Venue ID is required")
		return
	}

	venue, err := v.venueService.GetVenue(c.Request.Context(), venueID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue fetched successfully")
}

func (v *VenueController) ListVenues(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	venues, err := v.venueService.ListVenues(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Venues fetched successfully")
}

func (v *VenueController) ListNearbyVenues(c *gin.Context) {
	var query request_models.NearbyVenuesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	venues, err := v.venueService.ListNearby(c.Request.Context(), *query.Lat, *query.Lng, query.Radius, query.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Nearby venues fetched successfully")
}
