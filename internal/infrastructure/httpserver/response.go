package httpserver

import (
	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type failResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func respondStatus(c echo.Context, code int, status string, data any) error {
	return c.JSON(code, successResponse{Status: status, Data: data})
}

func respondData(c echo.Context, code int, data any) error {
	return respondStatus(c, code, statusSuccess, data)
}

func respondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, successResponse{Status: statusSuccess, Message: message})
}
