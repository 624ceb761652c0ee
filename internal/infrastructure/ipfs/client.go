package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ipfs/go-cid"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/entity"
)

// Client talks to the HTTP RPC API of a Kubo node or a compatible pinning
// service.
type Client struct {
	apiURL        string
	authorization string
	timeout       time.Duration
	httpClient    *http.Client
}

type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

func (c *Client) Add(ctx context.Context, name string, data []byte, contentType string) (entity.AddResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// Kubo unescapes part filenames and keeps only their base name.
	part, err := writer.CreateFormFile("file", url.QueryEscape(name))
	if err != nil {
		return entity.AddResult{}, domain.Wrap(domain.KindStorage, fmt.Errorf("create form file: %w", err))
	}

	if _, err := part.Write(data); err != nil {
		return entity.AddResult{}, domain.Wrap(domain.KindStorage, fmt.Errorf("write form file: %w", err))
	}

	if err := writer.Close(); err != nil {
		return entity.AddResult{}, domain.Wrap(domain.KindStorage, fmt.Errorf("close multipart writer: %w", err))
	}

	resp, err := c.post(ctx, "/api/v0/add?pin=true", &body, writer.FormDataContentType())
	if err != nil {
		return entity.AddResult{}, domain.Wrap(domain.KindStorage, err)
	}
	defer resp.Body.Close()

	// The add endpoint streams one JSON object per added node; the last one
	// is the root.
	var last addResponse
	dec := json.NewDecoder(resp.Body)
	for {
		var obj addResponse
		if err := dec.Decode(&obj); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return entity.AddResult{}, domain.Wrap(domain.KindStorage, fmt.Errorf("decode add response: %w", err))
		}
		last = obj
	}

	parsed, err := cid.Decode(last.Hash)
	if err != nil {
		return entity.AddResult{}, domain.Wrap(domain.KindStorage,
			fmt.Errorf("node returned invalid cid %q: %w", last.Hash, err))
	}

	path := last.Name
	if path == "" {
		path = name
	}

	return entity.AddResult{
		Cid:  parsed.String(),
		Path: path,
		Size: int64(len(data)),
		Type: contentType,
	}, nil
}

// Cat streams the content addressed by id. The caller must close the reader.
func (c *Client) Cat(ctx context.Context, id string) (io.ReadCloser, error) {
	parsed, err := cid.Decode(id)
	if err != nil {
		return nil, domain.Invalid("invalid cid %q: %v", id, err)
	}

	ctx, cancel := c.withTimeout(ctx)

	resp, err := c.post(ctx, "/api/v0/cat?arg="+url.QueryEscape(parsed.String()), nil, "")
	if err != nil {
		cancel()

		return nil, domain.Wrap(domain.KindStorage, err)
	}

	return &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, nil
}

func (c *Client) post(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.apiURL, "/")+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, fmt.Errorf("request %s failed with status %d: %s", path, resp.StatusCode,
			strings.TrimSpace(string(msg)))
	}

	return resp, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.timeout)
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *cancelOnClose) Close() error {
	defer r.cancel()

	return r.ReadCloser.Close()
}
