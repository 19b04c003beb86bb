package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Denom selects the token that can be bonded: either a native bank denom or
// the address of a cw20 token contract. Exactly one field is set.
type Denom struct {
	Native string `json:"native,omitempty"`
	Cw20   string `json:"cw20,omitempty"`
}

func NativeDenom(denom string) Denom { return Denom{Native: denom} }

func Cw20Denom(contract string) Denom { return Denom{Cw20: contract} }

func (d Denom) IsNative() bool { return d.Native != "" }

func (d Denom) IsCw20() bool { return d.Cw20 != "" }

// String returns the bank denom or the cw20 contract address.
func (d Denom) String() string {
	if d.IsNative() {
		return d.Native
	}
	return d.Cw20
}

func (d Denom) Validate() error {
	switch {
	case d.IsNative() && d.IsCw20():
		return errorsmod.Wrap(ErrInvalidConfig, "denom must be either native or cw20, not both")
	case d.IsNative():
		if err := sdk.ValidateDenom(d.Native); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "native denom: %s", err)
		}
	case d.IsCw20():
		if _, err := sdk.AccAddressFromBech32(d.Cw20); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "cw20 address %s: %s", d.Cw20, err)
		}
	default:
		return errorsmod.Wrap(ErrInvalidConfig, "denom is empty")
	}
	return nil
}
