package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diskrelay/internal/application/usecase/abstraction"
	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
)

type RentalRolesHandler struct {
	setter abstraction.RentalRolesSetter
}

func NewRentalRolesHandler(setter abstraction.RentalRolesSetter) *RentalRolesHandler {
	return &RentalRolesHandler{
		setter: setter,
	}
}

// Handle handles POST /set-rental-roles.
func (h *RentalRolesHandler) Handle(c echo.Context) error {
	if err := h.setter.Ready(); err != nil {
		return respondError(c, err, domain.KindChain)
	}

	var req dto.SetRentalRolesRequest
	if err := decodeBody(c, &req); err != nil {
		return respondError(c, err, domain.KindInvalidRequest)
	}

	roles, err := req.Validate()
	if err != nil {
		return respondError(c, err, domain.KindInvalidRequest)
	}

	res, err := h.setter.SetRentalRoles(c.Request().Context(), roles)
	if err != nil {
		return respondError(c, err, domain.KindChain)
	}

	return c.JSON(http.StatusOK, dto.TxResponse{OK: true, Tx: res.Hash})
}
