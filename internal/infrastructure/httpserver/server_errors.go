package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
)

// statusFor maps domain errors to HTTP status codes; 0 means unmapped.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrAlreadyLiked),
		errors.Is(err, apperrors.ErrWriteFailed),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	default:
		return 0
	}
}

// handleError writes the fail/error envelope for every error returned by a handler.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	message := err.Error()

	var he *echo.HTTPError
	if code == 0 && errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}
	if code == 0 {
		code = http.StatusInternalServerError
	}

	status := statusFail
	if code >= http.StatusInternalServerError {
		status = statusError
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"method": c.Request().Method, "path": c.Path()}).WithError(err).Error("request failed")
		}
		if he == nil {
			message = "internal server error"
		}
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, failResponse{Status: status, Message: message})
	}
	if writeErr != nil && s.logger != nil {
		s.logger.WithError(writeErr).Warn("failed to write error response")
	}
}
