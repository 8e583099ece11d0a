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
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
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

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors to HTTP responses.
// Business-rule violations carry their own message; everything unknown is a
// plain 500 so internals never leak.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAccountNotFound):
		// One message for unknown email and wrong password alike.
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountBlocked):
		RespondError(c, http.StatusUnauthorized, "Account is blocked")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrCategoryExists):
		RespondError(c, http.StatusConflict, "Category already exists")
	case errors.Is(err, ErrRecordNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrPaymentNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrPaymentSettled):
		RespondError(c, http.StatusConflict, "Payment already settled")
	case errors.Is(err, ErrPaymentRequired):
		RespondError(c, http.StatusPaymentRequired, "Active subscription required to publish")
	case errors.Is(err, ErrInvalidFieldValue):
		RespondError(c, http.StatusUnprocessableEntity, "Invalid field value")
	case errors.Is(err, ErrPostQuota), errors.Is(err, ErrPostCooldown):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrAssistantFailure):
		RespondError(c, http.StatusBadGateway, "Assistant is unavailable right now")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
