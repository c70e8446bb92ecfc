package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type AIController struct {
	aiService services.AIItineraryServiceInterface
}

func NewAIController(aiService services.AIItineraryServiceInterface) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// ExtractItinerary godoc
// @Summary Turn raw assistant output into a stored itinerary
// @Description Strips code fences, decodes the plan, geocodes each location, and persists itinerary plus pins atomically
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ExtractItineraryRequest true "Raw model output"
// @Success 201 {object} response_models.CreateItineraryResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itinerary [post]
func (a *AIController) ExtractItinerary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.ExtractItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Text is required")
		return
	}

	created, err := a.aiService.ExtractAndCreate(c.Request.Context(), userID, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Itinerary extracted successfully")
}
