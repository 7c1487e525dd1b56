package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"gallery-auction/internal/apperrors"
	"gallery-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, apperrors.ErrEmailExists):
		return http.StatusConflict, "email is already registered"
	case errors.Is(err, apperrors.ErrUsernameExists):
		return http.StatusConflict, "username is already taken"
	case errors.Is(err, apperrors.ErrPhoneExists):
		return http.StatusConflict, "phone number is already registered"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid account details"
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
