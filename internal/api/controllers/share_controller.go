package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type ShareController struct {
	shareService services.ShareServiceInterface
}

func NewShareController(shareService services.ShareServiceInterface) *ShareController {
	return &ShareController{
		shareService: shareService,
	}
}

// ShareItinerary godoc
// @Summary Mark an itinerary public and mint a share link
// @Tags Share
// @Accept json
// @Produce json
// @Param request body request_models.ShareItineraryRequest true "Share payload"
// @Success 200 {object} response_models.ShareItineraryResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /share/itinerary [post]
func (s *ShareController) ShareItinerary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.ShareItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID is required")
		return
	}

	share, err := s.shareService.ShareItinerary(c.Request.Context(), userID, req.ItineraryID, req.NotifyEmail)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, share, "Itinerary shared successfully")
}

// ResolveShareLink godoc
// @Summary Open a shared itinerary by token
// @Description Public route; a valid token is the authorization
// @Tags Share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /share/{token} [get]
func (s *ShareController) ResolveShareLink(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share token is required")
		return
	}

	itinerary, err := s.shareService.ResolveShareToken(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Shared itinerary fetched successfully")
}
