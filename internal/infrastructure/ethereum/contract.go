package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"diskrelay/internal/domain/entity"
)

// Contract is a deployed contract bound to the node it was loaded against.
type Contract struct {
	Name    entity.ContractName
	Address common.Address
	ABI     abi.ABI

	bound *bind.BoundContract
}

func NewContract(name entity.ContractName, address common.Address, parsed abi.ABI, backend Backend) *Contract {
	return &Contract{
		Name:    name,
		Address: address,
		ABI:     parsed,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, backend),
	}
}

// Transact submits method(args...) signed by signer and blocks until the
// transaction is mined. A mined but reverted transaction is an error.
func (c *Contract) Transact(ctx context.Context, backend Backend, signer *Signer,
	method string, args ...any,
) (entity.TxResult, error) {
	opts, err := signer.TransactOpts(ctx, backend)
	if err != nil {
		return entity.TxResult{}, err
	}

	tx, err := c.bound.Transact(opts, method, args...)
	if err != nil {
		return entity.TxResult{}, fmt.Errorf("%s.%s: %w", c.Name, method, err)
	}

	receipt, err := waitSuccessful(ctx, backend, tx)
	if err != nil {
		return entity.TxResult{}, fmt.Errorf("%s.%s: %w", c.Name, method, err)
	}

	return entity.TxResult{
		Hash:        tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Contract:    c.Name,
		Method:      method,
	}, nil
}

func waitSuccessful(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}

	return receipt, nil
}
