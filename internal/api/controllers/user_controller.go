package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// UpsertUser godoc
// @Summary Upsert a user profile (service role)
// @Description Called by the auth provider webhook; retries once with a suffixed username on collision
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpsertUserRequest true "Profile payload"
// @Success 201 {object} response_models.UserResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users [post]
func (u *UserController) UpsertUser(c *gin.Context) {
	var req request_models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := u.userService.UpsertProfile(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, profile, "Profile upserted successfully")
}
