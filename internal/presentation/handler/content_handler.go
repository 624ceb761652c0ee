package handler

import (
	"bufio"
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"diskrelay/internal/application/usecase/abstraction"
	"diskrelay/internal/domain"
	"diskrelay/internal/presentation"
	"diskrelay/pkg/logger"
)

const sniffLen = 3072

type ContentHandler struct {
	getter abstraction.ContentGetter
}

func NewContentHandler(getter abstraction.ContentGetter) *ContentHandler {
	return &ContentHandler{
		getter: getter,
	}
}

// Handle handles GET /content/:cid and streams the stored bytes back.
func (h *ContentHandler) Handle(c echo.Context) error {
	cid := c.Param(presentation.CidParam)
	if cid == "" {
		return respondError(c, domain.Invalid("missing cid"), domain.KindInvalidRequest)
	}

	rc, err := h.getter.GetContent(c.Request().Context(), cid)
	if err != nil {
		return respondError(c, err, domain.KindStorage)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logger.Warn("couldn't close content stream", "cid", cid, "err", err)
		}
	}()

	br := bufio.NewReaderSize(rc, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return respondError(c, domain.Wrap(domain.KindStorage, err), domain.KindStorage)
	}

	return c.Stream(http.StatusOK, mimetype.Detect(head).String(), br)
}
