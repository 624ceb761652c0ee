package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"diskrelay/internal/infrastructure/broker"
	"diskrelay/internal/infrastructure/database"
	"diskrelay/internal/infrastructure/ethereum"
	"diskrelay/internal/infrastructure/ipfs"
	"diskrelay/pkg/logger"
)

const (
	DefaultPort         = 4001
	DefaultRPCURL       = "http://127.0.0.1:8545"
	DefaultABIDir       = "abis"
	DefaultArtifactsDir = "artifacts"
	DefaultBodyLimit    = "10M"
	DefaultRateLimit    = 20
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	Chain           ethereum.Config        `yaml:"chain"`
	Deploy          ethereum.DeployConfig  `yaml:"deploy"`
	IPFS            ipfs.Config            `yaml:"ipfs"`
	Auth            AuthConfig             `yaml:"auth"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPConfig struct {
	Port      int     `yaml:"port"`
	BodyLimit string  `yaml:"body_limit"`
	RateLimit float64 `yaml:"rate_limit"`
}

type AuthConfig struct {
	AdminWallets []string `yaml:"admin_wallets"`
}

// Load reads the YAML file at path (skipped when path is empty), then .env
// outside prod, then the environment, which wins over both.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if err := config.loadEnv(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	config.setDefaults()

	if err := config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) loadEnv() error {
	override(&c.Chain.RPCURL, "RPC_URL")
	override(&c.Chain.ABIDir, "ABI_DIR")
	override(&c.Chain.Contracts.DiskRegistry, "DISK_REGISTRY_ADDRESS")
	override(&c.Chain.Contracts.DiskMarketplace, "DISK_MARKETPLACE_ADDRESS")
	override(&c.Chain.Contracts.FileRegistry, "FILE_REGISTRY_ADDRESS")
	override(&c.Deploy.ArtifactsDir, "ARTIFACTS_DIR")

	c.Chain.PrivateKey = os.Getenv("PRIVATE_KEY")
	c.IPFS.ProjectID = os.Getenv("IPFS_PROJECT_ID")
	c.IPFS.ProjectSecret = os.Getenv("IPFS_PROJECT_SECRET")
	c.DBConfig.URI = os.Getenv("DATABASE_URI")
	c.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("PORT must be a number: %s", port)
		}
		c.HTTP.Port = p
	}

	return nil
}

func override(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func (c *Config) setDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultPort
	}
	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = DefaultBodyLimit
	}
	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = DefaultRateLimit
	}
	if c.Chain.RPCURL == "" {
		c.Chain.RPCURL = DefaultRPCURL
	}
	if c.Chain.ABIDir == "" {
		c.Chain.ABIDir = DefaultABIDir
	}
	if c.Chain.ConfirmTimeout == 0 {
		c.Chain.ConfirmTimeout = 120_000
	}
	if c.Deploy.ArtifactsDir == "" {
		c.Deploy.ArtifactsDir = DefaultArtifactsDir
	}
	if c.IPFS.LocalURL == "" {
		c.IPFS.LocalURL = ipfs.DefaultLocalURL
	}
	if c.IPFS.RemoteURL == "" {
		c.IPFS.RemoteURL = ipfs.DefaultRemoteURL
	}
	if c.IPFS.Timeout == 0 {
		c.IPFS.Timeout = 60_000
	}
	if c.DBConfig.DBName == "" {
		c.DBConfig.DBName = "diskrelay"
	}
	if c.DBConfig.ConnectionTimeout == 0 {
		c.DBConfig.ConnectionTimeout = 10_000
	}
	if c.DBConfig.QueryTimeout == 0 {
		c.DBConfig.QueryTimeout = 5_000
	}
	if c.BrokerConfig.StreamName == "" {
		c.BrokerConfig.StreamName = "diskrelay-events"
	}
	if c.BrokerConfig.GroupName == "" {
		c.BrokerConfig.GroupName = "diskrelay"
	}
	if c.PublisherConfig.Timeout == 0 {
		c.PublisherConfig.Timeout = 2_000
	}
}

// AdminWallets returns the parsed wallet allowlist. basicCheck has already
// rejected malformed entries.
func (c *Config) AdminWallets() []common.Address {
	wallets := make([]common.Address, 0, len(c.Auth.AdminWallets))
	for _, w := range c.Auth.AdminWallets {
		wallets = append(wallets, common.HexToAddress(w))
	}

	return wallets
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port out of range: %d", c.HTTP.Port)
	}

	if c.Chain.ConfirmTimeout < 0 || c.IPFS.Timeout < 0 {
		return errors.New("timeouts must not be negative")
	}

	// Contract addresses are checked here so a typo fails at start instead of
	// silently leaving the handle unset.
	addresses := map[string]string{
		"DISK_REGISTRY_ADDRESS":    c.Chain.Contracts.DiskRegistry,
		"DISK_MARKETPLACE_ADDRESS": c.Chain.Contracts.DiskMarketplace,
		"FILE_REGISTRY_ADDRESS":    c.Chain.Contracts.FileRegistry,
	}
	for key, value := range addresses {
		if value != "" && !common.IsHexAddress(value) {
			return fmt.Errorf("%s is not a valid address: %s", key, value)
		}
	}

	for _, w := range c.Auth.AdminWallets {
		if !common.IsHexAddress(w) {
			return fmt.Errorf("admin wallet is not a valid address: %s", w)
		}
	}

	return nil
}
