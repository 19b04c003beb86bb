package keeper

import (
	"context"
	"time"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// ClaimsQueue holds the pending claims of every account, in creation order.
type ClaimsQueue struct {
	claims collections.Map[collections.Pair[sdk.AccAddress, uint64], types.Claim]
	seq    collections.Sequence
}

func NewClaimsQueue(sb *collections.SchemaBuilder) ClaimsQueue {
	return ClaimsQueue{
		claims: collections.NewMap(
			sb,
			types.ClaimsKey,
			types.ClaimsName,
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			types.JSONValue[types.Claim](),
		),
		seq: collections.NewSequence(sb, types.ClaimSequenceKey, types.ClaimSequenceName),
	}
}

// Create appends a claim for addr. Claims are never merged, even with an
// identical maturity.
func (q ClaimsQueue) Create(ctx context.Context, addr sdk.AccAddress, amount sdkmath.Int, releaseAt types.Expiration) error {
	id, err := q.seq.Next(ctx)
	if err != nil {
		return err
	}
	return q.claims.Set(ctx, collections.Join(addr, id), types.NewClaim(amount, releaseAt))
}

// Release removes the matured claims of addr, oldest first, and returns their
// sum. When limit is set it caps the number of released claims; immature
// claims are skipped and do not count towards it. Immature claims stay queued
// untouched.
func (q ClaimsQueue) Release(
	ctx context.Context,
	addr sdk.AccAddress,
	height uint64,
	blockTime time.Time,
	limit *uint32,
) (sdkmath.Int, error) {
	released := sdkmath.ZeroInt()
	var matured []collections.Pair[sdk.AccAddress, uint64]

	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr)
	err := q.claims.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, uint64], claim types.Claim) (bool, error) {
		if limit != nil && len(matured) >= int(*limit) {
			return true, nil
		}
		if claim.ReleaseAt.IsExpired(height, blockTime) {
			matured = append(matured, key)
			released = released.Add(claim.Amount)
		}
		return false, nil
	})
	if err != nil {
		return sdkmath.Int{}, err
	}

	// removal happens after the walk, store iterators must not be mutated
	for _, key := range matured {
		if err := q.claims.Remove(ctx, key); err != nil {
			return sdkmath.Int{}, err
		}
	}
	return released, nil
}

// Pending lists the claims of addr, oldest first, matured or not.
func (q ClaimsQueue) Pending(ctx context.Context, addr sdk.AccAddress) ([]types.Claim, error) {
	claims := []types.Claim{}
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr)
	err := q.claims.Walk(ctx, rng, func(_ collections.Pair[sdk.AccAddress, uint64], claim types.Claim) (bool, error) {
		claims = append(claims, claim)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Walk visits every pending claim of every account.
func (q ClaimsQueue) Walk(ctx context.Context, fn func(addr sdk.AccAddress, claim types.Claim) error) error {
	return q.claims.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, uint64], claim types.Claim) (bool, error) {
		return false, fn(key.K1(), claim)
	})
}
