package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"planmyday/internal/models/response_models"
)

// Health never touches the datastore or upstream services.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "healthy"})
}
