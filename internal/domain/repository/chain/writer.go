package chain

import (
	"context"

	"diskrelay/internal/domain/entity"
)

// Writer submits state-changing contract calls and waits for them to be mined.
type Writer interface {
	// Ready reports, without any network call, whether a write to the contract
	// could be attempted: a signer and the contract handle must be configured.
	Ready(contract entity.ContractName) error
	Write(ctx context.Context, contract entity.ContractName, method string, args ...any) (entity.TxResult, error)
}
