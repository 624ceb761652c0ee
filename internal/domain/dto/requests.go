package dto

import (
	"encoding/base64"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"diskrelay/internal/domain"
)

type ApproveProviderRequest struct {
	ProviderAddress string `json:"providerAddress"`
	Approve         *bool  `json:"approve"`
}

func (r *ApproveProviderRequest) Validate() (common.Address, bool, error) {
	provider, err := parseAddress("providerAddress", r.ProviderAddress)
	if err != nil {
		return common.Address{}, false, err
	}
	if r.Approve == nil {
		return common.Address{}, false, domain.Invalid("approve is required")
	}

	return provider, *r.Approve, nil
}

type UploadRequest struct {
	Filename      string  `json:"filename"`
	ContentBase64 *string `json:"contentBase64"`
}

// Decode validates the request and returns the raw content bytes.
func (r *UploadRequest) Decode() ([]byte, error) {
	if strings.TrimSpace(r.Filename) == "" {
		return nil, domain.Invalid("filename is required")
	}
	if r.ContentBase64 == nil {
		return nil, domain.Invalid("contentBase64 is required")
	}

	content, err := base64.StdEncoding.DecodeString(*r.ContentBase64)
	if err != nil {
		return nil, domain.Invalid("contentBase64: %s", err.Error())
	}

	return content, nil
}

type SetRentalRolesRequest struct {
	RentalID *BigInt `json:"rentalId"`
	Renter   string  `json:"renter"`
	Provider string  `json:"provider"`
}

type RentalRoles struct {
	RentalID *big.Int
	Renter   common.Address
	Provider common.Address
}

func (r *SetRentalRolesRequest) Validate() (RentalRoles, error) {
	if r.RentalID == nil {
		return RentalRoles{}, domain.Invalid("rentalId is required")
	}
	if r.RentalID.Sign() < 0 {
		return RentalRoles{}, domain.Invalid("rentalId must not be negative")
	}
	if r.RentalID.BitLen() > 256 {
		return RentalRoles{}, domain.Invalid("rentalId does not fit in uint256")
	}

	renter, err := parseAddress("renter", r.Renter)
	if err != nil {
		return RentalRoles{}, err
	}

	provider, err := parseAddress("provider", r.Provider)
	if err != nil {
		return RentalRoles{}, err
	}

	return RentalRoles{
		RentalID: new(big.Int).Set(&r.RentalID.Int),
		Renter:   renter,
		Provider: provider,
	}, nil
}

func parseAddress(field, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return common.Address{}, domain.Invalid("%s is required", field)
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, domain.Invalid("%s is not a valid address: %s", field, value)
	}

	return common.HexToAddress(value), nil
}
