package ipfs

import (
	"encoding/base64"
	"net/http"
	"time"

	ipfsRepository "diskrelay/internal/domain/repository/ipfs"
	"diskrelay/pkg/logger"
)

// Factory picks the endpoint once and then builds a new client for every
// operation.
type Factory struct {
	apiURL        string
	authorization string
	timeout       time.Duration
}

func NewFactory(cfg Config) *Factory {
	f := &Factory{timeout: time.Duration(cfg.Timeout) * time.Millisecond}

	if cfg.HasCredentials() {
		f.apiURL = cfg.RemoteURL
		if f.apiURL == "" {
			f.apiURL = DefaultRemoteURL
		}
		token := base64.StdEncoding.EncodeToString([]byte(cfg.ProjectID + ":" + cfg.ProjectSecret))
		f.authorization = "Basic " + token

		logger.Info("using remote ipfs endpoint", "url", f.apiURL)

		return f
	}

	f.apiURL = cfg.LocalURL
	if f.apiURL == "" {
		f.apiURL = DefaultLocalURL
	}
	logger.Info("using local ipfs node", "url", f.apiURL)

	return f
}

func (f *Factory) Remote() bool {
	return f.authorization != ""
}

func (f *Factory) NewClient() ipfsRepository.Client {
	return &Client{
		apiURL:        f.apiURL,
		authorization: f.authorization,
		timeout:       f.timeout,
		httpClient:    &http.Client{},
	}
}
