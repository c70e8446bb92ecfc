package controllers

import (
	"github.com/gin-gonic/gin"

	"tripline/internal/services"
	"tripline/pkg/utils"
)

type FollowController struct {
	followService services.FollowServiceInterface
}

func NewFollowController(followService services.FollowServiceInterface) *FollowController {
	return &FollowController{
		followService: followService,
	}
}

// Follow godoc
// @Summary Follow a user
// @Tags Follows
// @Produce json
// @Param userId path string true "User ID to follow"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follows/{userId} [post]
func (f *FollowController) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := f.followService.Follow(c.Request.Context(), userID, c.Param("userId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Followed successfully")
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags Follows
// @Produce json
// @Param userId path string true "User ID to unfollow"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follows/{userId} [delete]
func (f *FollowController) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := f.followService.Unfollow(c.Request.Context(), userID, c.Param("userId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Unfollowed successfully")
}

// ListFollowers godoc
// @Summary List users following the caller
// @Tags Follows
// @Produce json
// @Success 200 {object} response_models.FollowListResponse
// @Security BearerAuth
// @Router /follows/followers [get]
func (f *FollowController) ListFollowers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	followers, err := f.followService.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, followers, "Followers fetched successfully")
}

// ListFollowing godoc
// @Summary List users the caller follows
// @Tags Follows
// @Produce json
// @Success 200 {object} response_models.FollowListResponse
// @Security BearerAuth
// @Router /follows/following [get]
func (f *FollowController) ListFollowing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	following, err := f.followService.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, following, "Following fetched successfully")
}
