package usecase

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"diskrelay/internal/domain/entity"
	"diskrelay/internal/domain/model"
	"diskrelay/internal/domain/repository/broker"
	"diskrelay/internal/domain/repository/chain"
	"diskrelay/internal/domain/repository/database"
)

const methodSetProviderApproval = "setProviderApproval"

type ProviderApprover struct {
	chain chain.Writer
	recorder
}

func NewProviderApprover(chainWriter chain.Writer, writer database.Writer, publisher broker.Publisher) *ProviderApprover {
	return &ProviderApprover{
		chain:    chainWriter,
		recorder: recorder{writer: writer, publisher: publisher},
	}
}

func (a *ProviderApprover) Ready() error {
	return a.chain.Ready(entity.DiskRegistry)
}

// ApproveProvider calls DiskRegistry.setProviderApproval(provider, approve)
// and returns once the transaction is mined.
func (a *ProviderApprover) ApproveProvider(ctx context.Context, provider common.Address,
	approve bool,
) (entity.TxResult, error) {
	res, err := a.chain.Write(ctx, entity.DiskRegistry, methodSetProviderApproval, provider, approve)
	if err != nil {
		return entity.TxResult{}, err
	}

	a.record(ctx, &model.Receipt{
		Kind:     string(entity.EventProviderApproval),
		Ref:      res.Hash,
		Contract: string(res.Contract),
		Method:   res.Method,
		Args:     []string{provider.Hex(), strconv.FormatBool(approve)},
	})

	return res, nil
}
