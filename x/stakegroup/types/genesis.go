package types

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakeRecord is the bonded amount of one account.
type StakeRecord struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
}

// MemberRecord is the current weight of one account; a nil weight marks a
// former member.
type MemberRecord struct {
	Address string  `json:"address"`
	Weight  *uint64 `json:"weight"`
}

// Checkpoint is one entry of an account's weight history.
type Checkpoint struct {
	Address string  `json:"address"`
	Height  uint64  `json:"height"`
	Weight  *uint64 `json:"weight"`
}

// ClaimRecord is a pending claim of one account.
type ClaimRecord struct {
	Address string `json:"address"`
	Claim   Claim  `json:"claim"`
}

// GenesisState is the full exported state of the module.
type GenesisState struct {
	Config      Config         `json:"config"`
	Admin       string         `json:"admin,omitempty"`
	TotalWeight uint64         `json:"total_weight"`
	Stakes      []StakeRecord  `json:"stakes"`
	Members     []MemberRecord `json:"members"`
	History     []Checkpoint   `json:"history"`
	Claims      []ClaimRecord  `json:"claims"`
	Hooks       []string       `json:"hooks"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Config: DefaultConfig(),
	}
}

// ParseGenesis decodes a genesis document.
func ParseGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return errorsmod.Wrap(err, "config")
	}

	if gs.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Admin); err != nil {
			return errorsmod.Wrapf(ErrInvalidAddress, "admin: %s", err)
		}
	}

	seen := make(map[string]struct{})
	for _, s := range gs.Stakes {
		if err := validateAddress("stake", s.Address, seen); err != nil {
			return err
		}
		if s.Amount.IsNil() || s.Amount.IsNegative() {
			return errorsmod.Wrapf(ErrInvalidRequest, "negative stake for %s", s.Address)
		}
	}

	seen = make(map[string]struct{})
	var total uint64
	for _, m := range gs.Members {
		if err := validateAddress("member", m.Address, seen); err != nil {
			return err
		}
		total += WeightOrZero(m.Weight)
	}
	if total != gs.TotalWeight {
		return errorsmod.Wrapf(ErrInvalidRequest, "total weight %d does not match member sum %d", gs.TotalWeight, total)
	}

	for _, c := range gs.History {
		if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
			return errorsmod.Wrapf(ErrInvalidAddress, "history: %s", err)
		}
	}

	for _, c := range gs.Claims {
		if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
			return errorsmod.Wrapf(ErrInvalidAddress, "claim: %s", err)
		}
		if c.Claim.Amount.IsNil() || !c.Claim.Amount.IsPositive() {
			return errorsmod.Wrapf(ErrInvalidRequest, "claim for %s must be positive", c.Address)
		}
	}

	seen = make(map[string]struct{})
	for _, h := range gs.Hooks {
		if err := validateAddress("hook", h, seen); err != nil {
			return err
		}
	}

	return nil
}

func validateAddress(kind, addr string, seen map[string]struct{}) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: %s", kind, err)
	}
	if _, ok := seen[addr]; ok {
		return errorsmod.Wrap(ErrInvalidRequest, fmt.Sprintf("duplicate %s %s", kind, addr))
	}
	seen[addr] = struct{}{}
	return nil
}
