package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"diskrelay/internal/domain/entity"
	"diskrelay/pkg/logger"
)

type Stage int

const (
	StageStart Stage = iota
	StageRegistryDeployed
	StageMarketplaceDeployed
	StageFileRegistryDeployed
	StageWired
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageRegistryDeployed:
		return "registry_deployed"
	case StageMarketplaceDeployed:
		return "marketplace_deployed"
	case StageFileRegistryDeployed:
		return "file_registry_deployed"
	case StageWired:
		return "wired"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Deployment records how far a deploy got. On failure it still holds every
// address deployed before the failing step.
type Deployment struct {
	Stage        Stage
	Deployer     common.Address
	Registry     common.Address
	Marketplace  common.Address
	FileRegistry common.Address
	WiringTx     common.Hash
}

type Deployer struct {
	backend   Backend
	signer    *Signer
	artifacts map[entity.ContractName]Artifact
}

func NewDeployer(backend Backend, signer *Signer, artifacts map[entity.ContractName]Artifact) *Deployer {
	return &Deployer{
		backend:   backend,
		signer:    signer,
		artifacts: artifacts,
	}
}

// LoadArtifacts reads the build artifact of every contract from dir. Each one
// must carry creation bytecode.
func LoadArtifacts(dir string) (map[entity.ContractName]Artifact, error) {
	artifacts := make(map[entity.ContractName]Artifact, len(entity.Contracts))
	for _, name := range entity.Contracts {
		a, err := LoadArtifact(dir, name)
		if err != nil {
			return nil, fmt.Errorf("load %s artifact: %w", name, err)
		}

		if len(a.Bytecode) == 0 {
			return nil, fmt.Errorf("%s artifact has no bytecode", name)
		}

		artifacts[name] = a
	}

	return artifacts, nil
}

// Deploy runs the sequence registry, marketplace(registry),
// file registry(marketplace), marketplace.setFileRegistry(file registry).
// Each step waits for confirmation and the first failure stops the run.
func (d *Deployer) Deploy(ctx context.Context) (*Deployment, error) {
	dep := &Deployment{Stage: StageStart, Deployer: d.signer.Address()}
	logger.Info("deploying contracts", "deployer", dep.Deployer.Hex())

	registry, _, err := d.deploy(ctx, entity.DiskRegistry)
	if err != nil {
		return dep, err
	}
	dep.Registry = registry
	dep.Stage = StageRegistryDeployed

	marketplace, marketplaceContract, err := d.deploy(ctx, entity.DiskMarketplace, registry)
	if err != nil {
		return dep, err
	}
	dep.Marketplace = marketplace
	dep.Stage = StageMarketplaceDeployed

	fileRegistry, _, err := d.deploy(ctx, entity.FileRegistry, marketplace)
	if err != nil {
		return dep, err
	}
	dep.FileRegistry = fileRegistry
	dep.Stage = StageFileRegistryDeployed

	opts, err := d.signer.TransactOpts(ctx, d.backend)
	if err != nil {
		return dep, err
	}

	tx, err := marketplaceContract.Transact(opts, "setFileRegistry", fileRegistry)
	if err != nil {
		return dep, fmt.Errorf("%s.setFileRegistry: %w", entity.DiskMarketplace, err)
	}

	if _, err := waitSuccessful(ctx, d.backend, tx); err != nil {
		return dep, fmt.Errorf("%s.setFileRegistry: %w", entity.DiskMarketplace, err)
	}
	dep.WiringTx = tx.Hash()
	dep.Stage = StageWired

	logger.Info("contracts wired", "tx", tx.Hash().Hex())

	dep.Stage = StageDone

	return dep, nil
}

func (d *Deployer) deploy(ctx context.Context, name entity.ContractName,
	params ...any,
) (common.Address, *bind.BoundContract, error) {
	artifact, ok := d.artifacts[name]
	if !ok {
		return common.Address{}, nil, fmt.Errorf("no artifact for %s", name)
	}

	opts, err := d.signer.TransactOpts(ctx, d.backend)
	if err != nil {
		return common.Address{}, nil, err
	}

	address, tx, bound, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, d.backend, params...)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("deploy %s: %w", name, err)
	}

	if _, err := bind.WaitDeployed(ctx, d.backend, tx); err != nil {
		return common.Address{}, nil, fmt.Errorf("deploy %s: %w", name, err)
	}

	logger.Info("contract deployed", "contract", name, "address", address.Hex(), "tx", tx.Hash().Hex())

	return address, bound, nil
}
