package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// assertAdmin fails with ErrNotAdmin unless sender is the current admin.
func (k Keeper) assertAdmin(ctx context.Context, sender sdk.AccAddress) error {
	admin, err := k.GetAdmin(ctx)
	if err != nil {
		return err
	}
	if admin == "" || admin != sender.String() {
		return errorsmod.Wrapf(types.ErrNotAdmin, "invalid admin; expected %s, got %s", admin, sender)
	}
	return nil
}

// UpdateAdmin hands the admin role to newAdmin, or clears it when newAdmin is
// empty.
func (k Keeper) UpdateAdmin(ctx context.Context, sender sdk.AccAddress, newAdmin string) (*types.Response, error) {
	if err := k.assertAdmin(ctx, sender); err != nil {
		return nil, err
	}

	if newAdmin == "" {
		if err := k.Admin.Remove(ctx); err != nil {
			return nil, err
		}
	} else if err := k.Admin.Set(ctx, newAdmin); err != nil {
		return nil, err
	}

	admin := newAdmin
	if admin == "" {
		admin = "None"
	}
	return types.NewResponse().
		AddAttribute(types.AttributeKeyAction, types.ActionUpdateAdmin).
		AddAttribute(types.AttributeKeyAdmin, admin).
		AddAttribute(types.AttributeKeySender, sender.String()), nil
}

// AddHook registers addr as a hook. Admin only.
func (k Keeper) AddHook(ctx context.Context, sender sdk.AccAddress, addr string) (*types.Response, error) {
	if err := k.assertAdmin(ctx, sender); err != nil {
		return nil, err
	}
	if err := k.Hooks.Add(ctx, addr); err != nil {
		return nil, err
	}
	return types.NewResponse().
		AddAttribute(types.AttributeKeyAction, types.ActionAddHook).
		AddAttribute(types.AttributeKeyHook, addr).
		AddAttribute(types.AttributeKeySender, sender.String()), nil
}

// RemoveHook unregisters addr. Admin only.
func (k Keeper) RemoveHook(ctx context.Context, sender sdk.AccAddress, addr string) (*types.Response, error) {
	if err := k.assertAdmin(ctx, sender); err != nil {
		return nil, err
	}
	if err := k.Hooks.Remove(ctx, addr); err != nil {
		return nil, err
	}
	return types.NewResponse().
		AddAttribute(types.AttributeKeyAction, types.ActionRemoveHook).
		AddAttribute(types.AttributeKeyHook, addr).
		AddAttribute(types.AttributeKeySender, sender.String()), nil
}
