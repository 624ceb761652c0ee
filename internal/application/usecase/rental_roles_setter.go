package usecase

import (
	"context"

	"diskrelay/internal/domain/dto"
	"diskrelay/internal/domain/entity"
	"diskrelay/internal/domain/model"
	"diskrelay/internal/domain/repository/broker"
	"diskrelay/internal/domain/repository/chain"
	"diskrelay/internal/domain/repository/database"
)

const methodSetRentalRoles = "setRentalRoles"

type RentalRolesSetter struct {
	chain chain.Writer
	recorder
}

func NewRentalRolesSetter(chainWriter chain.Writer, writer database.Writer, publisher broker.Publisher) *RentalRolesSetter {
	return &RentalRolesSetter{
		chain:    chainWriter,
		recorder: recorder{writer: writer, publisher: publisher},
	}
}

func (s *RentalRolesSetter) Ready() error {
	return s.chain.Ready(entity.FileRegistry)
}

// SetRentalRoles calls FileRegistry.setRentalRoles(rentalId, renter, provider).
func (s *RentalRolesSetter) SetRentalRoles(ctx context.Context, roles dto.RentalRoles) (entity.TxResult, error) {
	res, err := s.chain.Write(ctx, entity.FileRegistry, methodSetRentalRoles,
		roles.RentalID, roles.Renter, roles.Provider)
	if err != nil {
		return entity.TxResult{}, err
	}

	s.record(ctx, &model.Receipt{
		Kind:     string(entity.EventRentalRoles),
		Ref:      res.Hash,
		Contract: string(res.Contract),
		Method:   res.Method,
		Args:     []string{roles.RentalID.String(), roles.Renter.Hex(), roles.Provider.Hex()},
	})

	return res, nil
}
