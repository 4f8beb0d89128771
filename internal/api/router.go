package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"planmyday/internal/api/controllers"
	"planmyday/internal/config"
	"planmyday/pkg/middleware"
)

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	planController *controllers.PlanController,
	venueController *controllers.VenueController) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	RegisterRoutes(&r.RouterGroup, planController, venueController)
	RegisterRoutes(r.Group("/api"), planController, venueController)

	return r
}

func RegisterRoutes(r *gin.RouterGroup,
	planController *controllers.PlanController,
	venueController *controllers.VenueController) {

	r.GET("/health", controllers.Health)

	r.POST("/plan", planController.CreatePlan)
	r.GET("/plans/:id", planController.GetPlan)

	venuesGroup := r.Group("/venues")
	venuesGroup.GET("", venueController.ListVenues)
	venuesGroup.GET("/nearby", venueController.ListNearbyVenues)
	venuesGroup.GET("/:id", venueController.GetVenueByID)
}
