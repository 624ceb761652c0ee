package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diskrelay/internal/application/usecase/abstraction"
	"diskrelay/internal/domain"
	"diskrelay/internal/presentation"
)

type UploadReceiptHandler struct {
	getter abstraction.UploadGetter
}

func NewUploadReceiptHandler(getter abstraction.UploadGetter) *UploadReceiptHandler {
	return &UploadReceiptHandler{
		getter: getter,
	}
}

// Handle handles GET /uploads/:cid.
func (h *UploadReceiptHandler) Handle(c echo.Context) error {
	desc, err := h.getter.GetUpload(c.Request().Context(), c.Param(presentation.CidParam))
	if err != nil {
		return respondError(c, err, domain.KindStorage)
	}

	return c.JSON(http.StatusOK, desc)
}
