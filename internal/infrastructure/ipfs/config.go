package ipfs

const (
	DefaultLocalURL  = "http://127.0.0.1:5001"
	DefaultRemoteURL = "https://ipfs.infura.io:5001"
)

type Config struct {
	LocalURL      string `yaml:"local_url"`
	RemoteURL     string `yaml:"remote_url"`
	ProjectID     string `yaml:"-"`
	ProjectSecret string `yaml:"-"`
	Timeout       int64  `yaml:"timeout_in_ms"`
}

// HasCredentials reports whether the remote pinning service should be used.
func (c Config) HasCredentials() bool {
	return c.ProjectID != "" && c.ProjectSecret != ""
}
