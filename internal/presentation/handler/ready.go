package handler

import (
	"github.com/labstack/echo/v4"

	"diskrelay/internal/domain"
)

// requireReady answers the configuration error of a write before any other
// route middleware runs.
func requireReady(ready func() error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := ready(); err != nil {
				return respondError(c, err, domain.KindChain)
			}

			return next(c)
		}
	}
}

func (h *ApproveProviderHandler) RequireReady(next echo.HandlerFunc) echo.HandlerFunc {
	return requireReady(h.approver.Ready)(next)
}

func (h *RentalRolesHandler) RequireReady(next echo.HandlerFunc) echo.HandlerFunc {
	return requireReady(h.setter.Ready)(next)
}
