package ethereum

type ContractsConfig struct {
	DiskRegistry    string `yaml:"disk_registry"`
	DiskMarketplace string `yaml:"disk_marketplace"`
	FileRegistry    string `yaml:"file_registry"`
}

type Config struct {
	RPCURL         string          `yaml:"rpc_url"`
	PrivateKey     string          `yaml:"-"`
	ABIDir         string          `yaml:"abi_dir"`
	Contracts      ContractsConfig `yaml:"contracts"`
	ConfirmTimeout int64           `yaml:"confirm_timeout_in_ms"`
}

type DeployConfig struct {
	ArtifactsDir string `yaml:"artifacts_dir"`
}
