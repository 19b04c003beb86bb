package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Error codes for the stakegroup module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrInvalidAddress        = errorsmod.Register(ModuleName, BaseErrorCode+1, "invalid address")
	ErrInvalidRequest        = errorsmod.Register(ModuleName, BaseErrorCode+2, "invalid request")
	ErrInvalidConfig         = errorsmod.Register(ModuleName, BaseErrorCode+3, "invalid config")
	ErrNoFunds               = errorsmod.Register(ModuleName, BaseErrorCode+4, "no funds sent")
	ErrMissingDenom          = errorsmod.Register(ModuleName, BaseErrorCode+5, "must send reserve token")
	ErrExtraDenoms           = errorsmod.Register(ModuleName, BaseErrorCode+6, "sent unsupported denoms, must send reserve token")
	ErrInvalidDenom          = errorsmod.Register(ModuleName, BaseErrorCode+7, "must send valid address to stake")
	ErrMixedNativeAndCw20    = errorsmod.Register(ModuleName, BaseErrorCode+8, "invalid address or denom")
	ErrStakeUnderflow        = errorsmod.Register(ModuleName, BaseErrorCode+9, "cannot unbond more than the bonded stake")
	ErrNothingToClaim        = errorsmod.Register(ModuleName, BaseErrorCode+10, "no claims that can be released currently")
	ErrWeightOverflow        = errorsmod.Register(ModuleName, BaseErrorCode+11, "weight does not fit in 64 bits")
	ErrNotAdmin              = errorsmod.Register(ModuleName, BaseErrorCode+12, "caller is not admin")
	ErrHookAlreadyRegistered = errorsmod.Register(ModuleName, BaseErrorCode+13, "given address already registered as a hook")
	ErrHookNotRegistered     = errorsmod.Register(ModuleName, BaseErrorCode+14, "given address not registered as a hook")
)
