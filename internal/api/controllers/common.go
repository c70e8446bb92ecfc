package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripline/pkg/utils"
)

// currentUserID reads the authenticated caller set by the JWT
// middleware. Aborts with 401 when the id is missing or malformed,
// which only happens if a route was registered without the middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return id, true
}
