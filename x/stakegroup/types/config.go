package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Config holds the staking parameters fixed at instantiation.
type Config struct {
	// Denom is the token that is bonded.
	Denom Denom `json:"denom"`
	// TokensPerWeight is how many tokens are worth one unit of weight.
	TokensPerWeight sdkmath.Int `json:"tokens_per_weight"`
	// MinBond is the smallest stake that grants membership. Never below one.
	MinBond sdkmath.Int `json:"min_bond"`
	// UnbondingPeriod is the delay between unbond and the matching claim.
	UnbondingPeriod Duration `json:"unbonding_period"`
}

// NewConfig builds a config, raising minBond to one so that a zero stake never
// counts as membership.
func NewConfig(denom Denom, tokensPerWeight, minBond sdkmath.Int, unbondingPeriod Duration) Config {
	if minBond.IsNil() || minBond.LT(sdkmath.OneInt()) {
		minBond = sdkmath.OneInt()
	}
	return Config{
		Denom:           denom,
		TokensPerWeight: tokensPerWeight,
		MinBond:         minBond,
		UnbondingPeriod: unbondingPeriod,
	}
}

// DefaultConfig returns the config used by DefaultGenesis.
func DefaultConfig() Config {
	return NewConfig(
		NativeDenom("stake"),
		sdkmath.NewInt(1_000),
		sdkmath.NewInt(5_000),
		HeightDuration(100),
	)
}

// Stringer method for Config.
func (c Config) String() string {
	bz, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// Validate does the sanity check on the config.
func (c Config) Validate() error {
	if err := c.Denom.Validate(); err != nil {
		return err
	}
	if c.TokensPerWeight.IsNil() || !c.TokensPerWeight.IsPositive() {
		return errorsmod.Wrap(ErrInvalidConfig, "tokens per weight must be positive")
	}
	if c.MinBond.IsNil() || c.MinBond.LT(sdkmath.OneInt()) {
		return errorsmod.Wrap(ErrInvalidConfig, "min bond must be at least one")
	}
	return c.UnbondingPeriod.Validate()
}
