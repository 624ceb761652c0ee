package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diskrelay/internal/presentation"
)

func HandleRoot(c echo.Context) error {
	return c.String(http.StatusOK, presentation.RootText)
}

func HandleHealth(c echo.Context) error {
	return c.String(http.StatusOK, presentation.HealthText)
}
