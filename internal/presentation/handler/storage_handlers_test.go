package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
	"diskrelay/internal/domain/entity"
	"diskrelay/internal/presentation"
)

func TestUploadHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		m := new(mockUploader)
		m.On("Upload", mock.Anything, "a.txt", []byte("hello")).Return(entity.AddResult{
			Cid: "bafkreibm6jg3ux5qumhcn2b3flc3tyu6dmlb4xa7u5bf44yegnrjhc4yeq", Path: "a.txt",
			Size: 5, Type: "text/plain; charset=utf-8",
		}, nil)

		rec := serve(NewUploadHandler(m).Handle, http.MethodPost, "/upload",
			`{"filename":"a.txt","contentBase64":"aGVsbG8="}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.UploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Cid)
		assert.Equal(t, "a.txt", resp.Path)
		assert.Equal(t, int64(5), resp.Size)
		m.AssertExpectations(t)
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing filename", `{"contentBase64":"aGVsbG8="}`},
		{"missing content", `{"filename":"a.txt"}`},
		{"bad base64", `{"filename":"a.txt","contentBase64":"***"}`},
		{"not json", `filename=a.txt`},
	}
	for _, tt := range invalid {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := new(mockUploader)
			rec := serve(NewUploadHandler(m).Handle, http.MethodPost, "/upload", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, string(domain.KindInvalidRequest), decodeError(t, rec).Error)
			m.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()

		m := new(mockUploader)
		m.On("Upload", mock.Anything, "a.txt", []byte("hello")).
			Return(entity.AddResult{}, domain.Wrap(domain.KindStorage, errors.New("connection refused")))

		rec := serve(NewUploadHandler(m).Handle, http.MethodPost, "/upload",
			`{"filename":"a.txt","contentBase64":"aGVsbG8="}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, string(domain.KindStorage), resp.Error)
		assert.Equal(t, "connection refused", resp.Message)
	})
}

func serveParam(h echo.HandlerFunc, target, cid string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(presentation.CidParam)
	c.SetParamValues(cid)

	_ = h(c)

	return rec
}

func TestContentHandler(t *testing.T) {
	t.Parallel()

	t.Run("streams content with detected type", func(t *testing.T) {
		t.Parallel()

		m := new(mockContentGetter)
		m.On("GetContent", mock.Anything, "bafk").Return(io.NopCloser(strings.NewReader("hello")), nil)

		rec := serveParam(NewContentHandler(m).Handle, "/content/bafk", "bafk")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	})

	t.Run("invalid cid", func(t *testing.T) {
		t.Parallel()

		m := new(mockContentGetter)
		m.On("GetContent", mock.Anything, "nope").Return(nil, domain.Invalid("invalid cid %q", "nope"))

		rec := serveParam(NewContentHandler(m).Handle, "/content/nope", "nope")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(domain.KindInvalidRequest), decodeError(t, rec).Error)
	})

	t.Run("untyped error is a storage error", func(t *testing.T) {
		t.Parallel()

		m := new(mockContentGetter)
		m.On("GetContent", mock.Anything, "bafk").Return(nil, errors.New("boom"))

		rec := serveParam(NewContentHandler(m).Handle, "/content/bafk", "bafk")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, string(domain.KindStorage), decodeError(t, rec).Error)
	})
}

func TestUploadReceiptHandler(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		desc := &dto.UploadDescriptor{Cid: "bafk", Path: "a.txt", Size: 5, Type: "text/plain", Uploaded: 1714564800}
		m := new(mockUploadGetter)
		m.On("GetUpload", mock.Anything, "bafk").Return(desc, nil)

		rec := serveParam(NewUploadReceiptHandler(m).Handle, "/uploads/bafk", "bafk")
		require.Equal(t, http.StatusOK, rec.Code)

		var got dto.UploadDescriptor
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *desc, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		m := new(mockUploadGetter)
		m.On("GetUpload", mock.Anything, "bafk").Return(nil, domain.ErrNotFound)

		rec := serveParam(NewUploadReceiptHandler(m).Handle, "/uploads/bafk", "bafk")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, string(domain.KindNotFound), decodeError(t, rec).Error)
	})
}

func TestRootAndHealth(t *testing.T) {
	t.Parallel()

	rec := serve(HandleRoot, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, presentation.RootText, rec.Body.String())

	rec = serve(HandleHealth, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, presentation.HealthText, rec.Body.String())
}
