package types

import (
	sdkmath "cosmossdk.io/math"
)

// Claim is an amount of unbonded tokens that becomes withdrawable once
// ReleaseAt has passed.
type Claim struct {
	Amount    sdkmath.Int `json:"amount"`
	ReleaseAt Expiration  `json:"release_at"`
}

func NewClaim(amount sdkmath.Int, releaseAt Expiration) Claim {
	return Claim{Amount: amount, ReleaseAt: releaseAt}
}
