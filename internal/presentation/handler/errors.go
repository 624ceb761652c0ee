package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
	"diskrelay/pkg/logger"
)

// respondError writes err as an API error. Errors without a kind are reported
// as fallback. Configuration kinds are answered with their bare name as a
// plain-text body; everything else as dto.ErrorResponse.
func respondError(c echo.Context, err error, fallback domain.Kind) error {
	kind := domain.KindOf(err, fallback)

	message := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message()
	}

	if kind.IsConfiguration() {
		logger.Warn("request refused", "path", c.Path(), "kind", kind)

		return c.String(http.StatusInternalServerError, string(kind))
	}

	status := statusOf(kind)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", c.Path(), "kind", kind, "err", err)
	}

	return c.JSON(status, dto.ErrorResponse{
		Error:   string(kind),
		Message: message,
	})
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidRequest:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody parses the request body as JSON whatever the Content-Type.
func decodeBody(c echo.Context, v any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("request body is required")
		}

		return domain.Invalid("malformed request body: %s", err.Error())
	}

	return nil
}
