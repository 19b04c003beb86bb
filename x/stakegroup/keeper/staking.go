package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// Bond adds the native funds attached to the request to the sender's stake.
func (k Keeper) Bond(ctx context.Context, info types.MessageInfo) (*types.Response, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to get config")
	}
	if !cfg.Denom.IsNative() {
		return nil, errorsmod.Wrap(types.ErrMixedNativeAndCw20, "native funds sent to a cw20 staking module")
	}

	amount, err := mustPayFunds(info.Funds, cfg.Denom.Native)
	if err != nil {
		return nil, err
	}
	return k.bond(ctx, cfg, info.Sender, amount)
}

// Receive handles cw20 tokens forwarded by the token contract in info.Sender
// on behalf of msg.Sender. The only embedded action is bond.
func (k Keeper) Receive(ctx context.Context, info types.MessageInfo, msg types.MsgReceive) (*types.Response, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to get config")
	}
	if !cfg.Denom.IsCw20() {
		return nil, errorsmod.Wrap(types.ErrMixedNativeAndCw20, "cw20 tokens sent to a native staking module")
	}
	if cfg.Denom.Cw20 != info.Sender.String() {
		return nil, errorsmod.Wrap(types.ErrInvalidDenom, cfg.Denom.Cw20)
	}

	if _, err := types.ParseReceiveMsg(msg.Msg); err != nil {
		return nil, err
	}

	// msg.Sender is only asserted by the token contract, so it is used for
	// nothing but crediting the stake
	staker, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAddress, "invalid receive sender (%s)", err)
	}
	return k.bond(ctx, cfg, staker, msg.Amount)
}

func (k Keeper) bond(ctx context.Context, cfg types.Config, sender sdk.AccAddress, amount sdkmath.Int) (*types.Response, error) {
	stake, err := k.GetStake(ctx, sender)
	if err != nil {
		return nil, err
	}
	newStake, err := stake.SafeAdd(amount)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "stake overflow: %s", err)
	}

	change, err := k.planMembership(ctx, sender, newStake, cfg)
	if err != nil {
		return nil, err
	}

	if err := k.Stake.Set(ctx, sender, newStake); err != nil {
		return nil, err
	}
	hookMsgs, err := k.applyMembership(ctx, change)
	if err != nil {
		return nil, err
	}

	return types.NewResponse().
		AddMessages(hookMsgs...).
		AddAttribute(types.AttributeKeyAction, types.ActionBond).
		AddAttribute(types.AttributeKeyAmount, amount.String()).
		AddAttribute(types.AttributeKeySender, sender.String()), nil
}

// Unbond removes amount from the sender's stake and queues a claim for it that
// matures one unbonding period from now.
func (k Keeper) Unbond(ctx context.Context, sender sdk.AccAddress, amount sdkmath.Int) (*types.Response, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to get config")
	}

	stake, err := k.GetStake(ctx, sender)
	if err != nil {
		return nil, err
	}
	if amount.GT(stake) {
		return nil, errorsmod.Wrapf(types.ErrStakeUnderflow, "cannot sub %s - %s", stake, amount)
	}
	newStake := stake.Sub(amount)

	change, err := k.planMembership(ctx, sender, newStake, cfg)
	if err != nil {
		return nil, err
	}

	sdkCtx, height := blockInfo(ctx)
	releaseAt, err := cfg.UnbondingPeriod.After(height, sdkCtx.BlockTime())
	if err != nil {
		return nil, err
	}

	if err := k.Stake.Set(ctx, sender, newStake); err != nil {
		return nil, err
	}
	if err := k.Claims.Create(ctx, sender, amount, releaseAt); err != nil {
		return nil, err
	}
	hookMsgs, err := k.applyMembership(ctx, change)
	if err != nil {
		return nil, err
	}

	k.Logger().Debug("claim created", "addr", sender.String(), "amount", amount.String(), "release_at", releaseAt.String())

	return types.NewResponse().
		AddMessages(hookMsgs...).
		AddAttribute(types.AttributeKeyAction, types.ActionUnbond).
		AddAttribute(types.AttributeKeyAmount, amount.String()).
		AddAttribute(types.AttributeKeySender, sender.String()), nil
}

// Claim pays out every matured claim of the sender in a single message. The
// stake was already debited at unbond time, so only the queue changes here.
func (k Keeper) Claim(ctx context.Context, sender sdk.AccAddress) (*types.Response, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to get config")
	}

	sdkCtx, height := blockInfo(ctx)
	release, err := k.Claims.Release(ctx, sender, height, sdkCtx.BlockTime(), nil)
	if err != nil {
		return nil, err
	}
	if release.IsZero() {
		return nil, types.ErrNothingToClaim
	}

	payout, err := k.payoutMsg(cfg.Denom, sender, release)
	if err != nil {
		return nil, err
	}

	k.Logger().Debug("claims released", "addr", sender.String(), "amount", release.String(), "height", height)

	return types.NewResponse().
		AddMessages(payout).
		AddAttribute(types.AttributeKeyAction, types.ActionClaim).
		AddAttribute(types.AttributeKeyTokens, types.FormatTokens(release, cfg.Denom)).
		AddAttribute(types.AttributeKeySender, sender.String()), nil
}

// payoutMsg builds the transfer of amount from the module account to
// recipient: a bank send for native denoms, a cw20 transfer otherwise.
func (k Keeper) payoutMsg(denom types.Denom, recipient sdk.AccAddress, amount sdkmath.Int) (sdk.Msg, error) {
	if denom.IsNative() {
		return &banktypes.MsgSend{
			FromAddress: k.moduleAddr.String(),
			ToAddress:   recipient.String(),
			Amount:      sdk.NewCoins(sdk.NewCoin(denom.Native, amount)),
		}, nil
	}

	transfer, err := types.NewCw20TransferMsg(recipient.String(), amount)
	if err != nil {
		return nil, err
	}
	return &wasmtypes.MsgExecuteContract{
		Sender:   k.moduleAddr.String(),
		Contract: denom.Cw20,
		Msg:      transfer,
	}, nil
}

// mustPayFunds requires exactly one coin of the given denom with a positive
// amount.
func mustPayFunds(funds sdk.Coins, denom string) (sdkmath.Int, error) {
	if err := funds.Validate(); err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(types.ErrInvalidRequest, "invalid funds: %s", err)
	}

	switch len(funds) {
	case 0:
		return sdkmath.Int{}, types.ErrNoFunds
	case 1:
		if funds[0].Denom != denom {
			return sdkmath.Int{}, errorsmod.Wrap(types.ErrMissingDenom, denom)
		}
		return funds[0].Amount, nil
	default:
		return sdkmath.Int{}, errorsmod.Wrap(types.ErrExtraDenoms, denom)
	}
}
