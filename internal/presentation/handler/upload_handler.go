package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diskrelay/internal/application/usecase/abstraction"
	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /upload.
func (h *UploadHandler) Handle(c echo.Context) error {
	var req dto.UploadRequest
	if err := decodeBody(c, &req); err != nil {
		return respondError(c, err, domain.KindInvalidRequest)
	}

	content, err := req.Decode()
	if err != nil {
		return respondError(c, err, domain.KindInvalidRequest)
	}

	res, err := h.uploader.Upload(c.Request().Context(), req.Filename, content)
	if err != nil {
		return respondError(c, err, domain.KindStorage)
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Cid:  res.Cid,
		Path: res.Path,
		Size: res.Size,
		Type: res.Type,
	})
}
