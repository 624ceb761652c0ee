package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/entity"
	"diskrelay/pkg/logger"
)

var notConfigured = map[entity.ContractName]error{
	entity.DiskRegistry:    domain.ErrRegistryNotConfigured,
	entity.DiskMarketplace: domain.ErrMarketplaceNotConfigured,
	entity.FileRegistry:    domain.ErrFileRegistryNotConfigured,
}

// Bindings owns the admin signer and the three contract handles. A missing
// signer or handle is not fatal; calls that need it fail with the matching
// configuration error.
type Bindings struct {
	backend   Backend
	signer    *Signer
	contracts map[entity.ContractName]*Contract
	timeout   time.Duration
}

// NewBindings loads the ABI of every contract whose address is configured.
// Handles whose address or ABI is unusable are skipped with a warning.
func NewBindings(cfg Config, backend Backend, signer *Signer) *Bindings {
	b := &Bindings{
		backend:   backend,
		signer:    signer,
		contracts: make(map[entity.ContractName]*Contract, len(entity.Contracts)),
		timeout:   time.Duration(cfg.ConfirmTimeout) * time.Millisecond,
	}

	if signer == nil {
		logger.Warn("no admin key configured, chain writes are disabled")
	} else {
		logger.Info("admin signer loaded", "address", signer.Address().Hex())
	}

	addresses := map[entity.ContractName]string{
		entity.DiskRegistry:    cfg.Contracts.DiskRegistry,
		entity.DiskMarketplace: cfg.Contracts.DiskMarketplace,
		entity.FileRegistry:    cfg.Contracts.FileRegistry,
	}

	for _, name := range entity.Contracts {
		address := addresses[name]
		if address == "" {
			logger.Warn("contract address not configured", "contract", name)

			continue
		}

		if !common.IsHexAddress(address) {
			logger.Warn("contract address is not a hex address", "contract", name, "address", address)

			continue
		}

		artifact, err := LoadArtifact(cfg.ABIDir, name)
		if err != nil {
			logger.Warn("ABI not found", "contract", name, "dir", cfg.ABIDir, "err", err)

			continue
		}

		b.contracts[name] = NewContract(name, common.HexToAddress(address), artifact.ABI, backend)
	}

	return b
}

// Contract returns the handle for name, or the configuration error of that
// contract when its handle is unset.
func (b *Bindings) Contract(name entity.ContractName) (*Contract, error) {
	if c, ok := b.contracts[name]; ok {
		return c, nil
	}

	if err, known := notConfigured[name]; known {
		return nil, err
	}

	return nil, domain.Invalid("unknown contract %q", name)
}

// Ready checks the signer first, then the contract handle.
func (b *Bindings) Ready(name entity.ContractName) error {
	if b.signer == nil {
		return domain.ErrNoAdminKey
	}

	_, err := b.Contract(name)

	return err
}

func (b *Bindings) Write(ctx context.Context, name entity.ContractName,
	method string, args ...any,
) (entity.TxResult, error) {
	if err := b.Ready(name); err != nil {
		return entity.TxResult{}, err
	}
	contract, _ := b.Contract(name)

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	res, err := contract.Transact(ctx, b.backend, b.signer, method, args...)
	if err != nil {
		return entity.TxResult{}, domain.Wrap(domain.KindChain, err)
	}

	logger.Info("transaction confirmed", "contract", name, "method", method,
		"tx", res.Hash, "block", res.BlockNumber)

	return res, nil
}
