package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmusic/openmusic-api/internal/core/domain/user"
)

func (s *Server) postUser(c echo.Context) error {
	var req user.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, err := s.userService.AddUser(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, map[string]string{"userId": userID})
}
