package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diskrelay/internal/application/usecase/abstraction"
	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
)

type ApproveProviderHandler struct {
	approver abstraction.ProviderApprover
}

func NewApproveProviderHandler(approver abstraction.ProviderApprover) *ApproveProviderHandler {
	return &ApproveProviderHandler{
		approver: approver,
	}
}

// Handle handles POST /admin/approve-provider. The signer and registry are
// checked before the body is read.
func (h *ApproveProviderHandler) Handle(c echo.Context) error {
	if err := h.approver.Ready(); err != nil {
		return respondError(c, err, domain.KindChain)
	}

	var req dto.ApproveProviderRequest
	if err := decodeBody(c, &req); err != nil {
		return respondError(c, err, domain.KindInvalidRequest)
	}

	provider, approve, err := req.Validate()
	if err != nil {
		return respondError(c, err, domain.KindInvalidRequest)
	}

	res, err := h.approver.ApproveProvider(c.Request().Context(), provider, approve)
	if err != nil {
		return respondError(c, err, domain.KindChain)
	}

	return c.JSON(http.StatusOK, dto.TxResponse{OK: true, Tx: res.Hash})
}
