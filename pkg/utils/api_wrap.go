package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP codes in one
// place so controllers never repeat the taxonomy. Persistence details
// are logged, never returned.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrNoPins),
		errors.Is(err, ErrInvalidCoordinates),
		errors.Is(err, ErrInvalidPinTitle),
		errors.Is(err, ErrSelfFollow),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "You do not have access to this resource")
	case errors.Is(err, ErrItineraryNotFound),
		errors.Is(err, ErrChatNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrShareTokenNotFound),
		errors.Is(err, ErrFollowNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoItineraryExtracted):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrAIProviderError):
		log.Printf("AI provider error: %v", err)
		RespondError(c, http.StatusBadGateway, "Assistant is unavailable, try again later")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
