package types

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// A weight is carried as *uint64 throughout the module: nil means the account
// is not a member, a non-nil zero is a valid zero-weight membership.

// Weight returns a pointer to w.
func Weight(w uint64) *uint64 { return &w }

// WeightEqual compares two optional weights by value.
func WeightEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// WeightOrZero unwraps an optional weight, treating non-members as zero.
func WeightOrZero(w *uint64) uint64 {
	if w == nil {
		return 0
	}
	return *w
}

// FormatWeight renders an optional weight for logs and events.
func FormatWeight(w *uint64) string {
	if w == nil {
		return "none"
	}
	return strconv.FormatUint(*w, 10)
}

// CalcWeight derives the membership weight of a stake. Stakes under the
// minimum bond are not members; otherwise the weight is the stake divided by
// tokens per weight, rounded down.
func CalcWeight(stake sdkmath.Int, cfg Config) (*uint64, error) {
	if stake.LT(cfg.MinBond) {
		return nil, nil
	}
	w := stake.Quo(cfg.TokensPerWeight)
	if !w.IsUint64() {
		return nil, errorsmod.Wrapf(ErrWeightOverflow, "%s / %s", stake, cfg.TokensPerWeight)
	}
	return Weight(w.Uint64()), nil
}
