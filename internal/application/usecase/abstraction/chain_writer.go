package abstraction

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"diskrelay/internal/domain/dto"
	"diskrelay/internal/domain/entity"
)

// ProviderApprover toggles a provider's approval on the disk registry.
// Ready reports the configuration error, if any, that would stop the call.
type ProviderApprover interface {
	Ready() error
	ApproveProvider(ctx context.Context, provider common.Address, approve bool) (entity.TxResult, error)
}

type RentalRolesSetter interface {
	Ready() error
	SetRentalRoles(ctx context.Context, roles dto.RentalRoles) (entity.TxResult, error)
}
