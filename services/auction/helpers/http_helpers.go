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
	case errors.Is(err, apperrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, apperrors.ErrPictureNotFound):
		return http.StatusNotFound, "picture not found"
	case errors.Is(err, apperrors.ErrAlreadyAuctioned):
		return http.StatusConflict, "picture is already up for auction"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, apperrors.ErrAuctionEnded):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, apperrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, apperrors.ErrDuplicateAmount):
		return http.StatusConflict, "bid amount already placed"
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "permission denied"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
