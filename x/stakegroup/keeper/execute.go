package keeper

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// Execute routes one authenticated request to its handler. Handlers validate
// before writing, and the host discards every write of a request that returns
// an error, so a failure never leaves partial state behind.
func (k Keeper) Execute(ctx context.Context, info types.MessageInfo, msg types.ExecuteMsg) (*types.Response, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty message")
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	var (
		res    *types.Response
		err    error
		action string
	)
	start := time.Now()

	switch m := msg.(type) {
	case types.MsgBond:
		action = types.ActionBond
		res, err = k.Bond(ctx, info)
	case types.MsgReceive:
		action = types.ActionBond
		res, err = k.Receive(ctx, info, m)
	case types.MsgUnbond:
		action = types.ActionUnbond
		res, err = k.Unbond(ctx, info.Sender, m.Tokens)
	case types.MsgClaim:
		action = types.ActionClaim
		res, err = k.Claim(ctx, info.Sender)
	case types.MsgUpdateAdmin:
		action = types.ActionUpdateAdmin
		res, err = k.UpdateAdmin(ctx, info.Sender, m.Admin)
	case types.MsgAddHook:
		action = types.ActionAddHook
		res, err = k.AddHook(ctx, info.Sender, m.Addr)
	case types.MsgRemoveHook:
		action = types.ActionRemoveHook
		res, err = k.RemoveHook(ctx, info.Sender, m.Addr)
	default:
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
	}
	if err != nil {
		return nil, err
	}

	telemetry.ModuleMeasureSince(types.ModuleName, start, action)
	telemetry.IncrCounter(1, types.ModuleName, action)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewActionEvent(res.Attributes))
	return res, nil
}
