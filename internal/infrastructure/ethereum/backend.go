package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"diskrelay/pkg/logger"
)

// Backend is everything the relay needs from a chain node: contract calls,
// transaction submission, receipts and the chain id used for signing.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dial connects to the node at rpcURL. For HTTP endpoints no request is made
// until the first call, so an unreachable node surfaces per request.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	logger.Info("connecting to chain node", "rpc_url", rpcURL)

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}

	return client, nil
}
