package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
)

func (s *Server) postAuthentication(c echo.Context) error {
	var req auth.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{
		Status:  statusSuccess,
		Message: "Authentication added",
		Data:    tokens,
	})
}

func (s *Server) putAuthentication(c echo.Context) error {
	var req auth.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	accessToken, err := s.authSvc.RefreshAccessToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{
		Status:  statusSuccess,
		Message: "Access token refreshed",
		Data:    map[string]string{"accessToken": accessToken},
	})
}
