package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"planmyday/internal/models/request_models"
	"planmyday/internal/services"
	"planmyday/pkg/utils"
)

type PlanController struct {
	dayPlanService services.DayPlanServiceInterface
}

func NewPlanController(dayPlanService services.DayPlanServiceInterface) *PlanController {
	return &PlanController{
		dayPlanService: dayPlanService,
	}
}

// CreatePlan answers with the bare day plan so existing clients can read it directly.
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	plan, err := p.dayPlanService.CreateDayPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (p *PlanController) GetPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.dayPlanService.GetDayPlan(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Day plan fetched successfully")
}
