package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/backend/internal/service/booking"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Code: code, Message: message})
}

// fail maps an engine error onto a status and an error code. Client mistakes
// log at warn, storage failures at error.
func fail(c *gin.Context, log *slog.Logger, err error, attrs ...any) {
	var (
		vErr *booking.ValidationError
		nErr *booking.NotFoundError
		cErr *booking.ConflictError
		oErr *booking.OutsideAvailabilityError
	)
	args := append([]any{slog.Any("err", err)}, attrs...)

	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", args...)
		writeError(c, http.StatusBadRequest, "invalid_request", booking.UserMessage(err))
	case errors.As(err, &nErr):
		log.Warn("not found", args...)
		writeError(c, http.StatusNotFound, "not_found", booking.UserMessage(err))
	case errors.As(err, &cErr):
		log.Info("booking conflict", args...)
		writeError(c, http.StatusConflict, "artist_unavailable", booking.UserMessage(err))
	case errors.As(err, &oErr):
		log.Info("booking outside availability", args...)
		writeError(c, http.StatusConflict, "outside_availability", booking.UserMessage(err))
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("request deadline exceeded", args...)
		writeError(c, http.StatusGatewayTimeout, "timeout", "The request timed out. Please try again.")
	default:
		log.Error("request failed", args...)
		writeError(c, http.StatusInternalServerError, "internal", booking.UserMessage(err))
	}
}
