package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary godoc
// @Summary Create an itinerary with its pins
// @Description Validates the payload and persists the itinerary and all pins atomically
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary payload"
// @Success 201 {object} response_models.CreateItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := i.itineraryService.CreateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Itinerary created successfully")
}

// GetItineraryById godoc
// @Summary Get an itinerary by ID
// @Description Fetch an itinerary plus its pins shaped for map display; owner only
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItineraryById(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByID(c.Request.Context(), itineraryID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// ListItineraries godoc
// @Summary List the caller's itineraries
// @Description Newest-updated first, optionally capped with ?limit=N
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of itineraries"
// @Success 200 {array} response_models.ItinerarySummaryResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	itineraries, err := i.itineraryService.ListItinerariesByOwner(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}
