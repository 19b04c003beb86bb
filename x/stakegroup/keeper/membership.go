package keeper

import (
	"context"
	"math"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// membershipChange is a weight transition computed ahead of any write.
type membershipChange struct {
	addr      sdk.AccAddress
	oldWeight *uint64
	newWeight *uint64
	total     uint64
	hookMsgs  []sdk.Msg
}

// planMembership works out what a new stake does to the membership of addr.
// It only reads state; a nil change means the weight stays the same.
func (k Keeper) planMembership(ctx context.Context, addr sdk.AccAddress, newStake sdkmath.Int, cfg types.Config) (*membershipChange, error) {
	newWeight, err := types.CalcWeight(newStake, cfg)
	if err != nil {
		return nil, err
	}
	oldWeight, err := k.Members.Current(ctx, addr)
	if err != nil {
		return nil, err
	}
	if types.WeightEqual(oldWeight, newWeight) {
		return nil, nil
	}

	total, err := k.GetTotalWeight(ctx)
	if err != nil {
		return nil, err
	}
	// the total always contains oldWeight, so only the addition can overflow
	total -= types.WeightOrZero(oldWeight)
	if types.WeightOrZero(newWeight) > math.MaxUint64-total {
		return nil, errorsmod.Wrapf(types.ErrWeightOverflow, "total weight %d + %d", total, types.WeightOrZero(newWeight))
	}
	total += types.WeightOrZero(newWeight)

	hookMsgs, err := k.Hooks.Prepare(ctx, types.NewMemberDiff(addr.String(), oldWeight, newWeight))
	if err != nil {
		return nil, err
	}

	return &membershipChange{
		addr:      addr,
		oldWeight: oldWeight,
		newWeight: newWeight,
		total:     total,
		hookMsgs:  hookMsgs,
	}, nil
}

// applyMembership writes a planned change: the snapshot at the current height,
// the new total, and the member_changed event. It returns the hook messages.
func (k Keeper) applyMembership(ctx context.Context, change *membershipChange) ([]sdk.Msg, error) {
	if change == nil {
		return nil, nil
	}
	sdkCtx, height := blockInfo(ctx)

	if _, err := k.Members.Set(ctx, change.addr, change.newWeight, height); err != nil {
		return nil, err
	}
	if err := k.Total.Set(ctx, change.total); err != nil {
		return nil, err
	}

	diff := types.NewMemberDiff(change.addr.String(), change.oldWeight, change.newWeight)
	sdkCtx.EventManager().EmitEvent(types.NewMemberChangedEvent(diff, height))
	k.Logger().Debug("membership changed",
		"addr", diff.Key,
		"old", types.FormatWeight(diff.Old),
		"new", types.FormatWeight(diff.New),
		"total", change.total,
		"height", height,
	)

	return change.hookMsgs, nil
}
