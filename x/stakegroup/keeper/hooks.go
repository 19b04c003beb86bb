package keeper

import (
	"context"
	"errors"
	"slices"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// HookRegistry is the ordered list of contracts told about weight changes.
type HookRegistry struct {
	hooks  collections.Item[types.HookList]
	sender sdk.AccAddress
}

func NewHookRegistry(sb *collections.SchemaBuilder, sender sdk.AccAddress) HookRegistry {
	return HookRegistry{
		hooks:  collections.NewItem(sb, types.HooksKey, types.HooksName, types.JSONValue[types.HookList]()),
		sender: sender,
	}
}

// List returns the registered hooks in registration order.
func (r HookRegistry) List(ctx context.Context) ([]string, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return list.Hooks, nil
}

// Add appends addr to the registry.
func (r HookRegistry) Add(ctx context.Context, addr string) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	if list.Contains(addr) {
		return errorsmod.Wrap(types.ErrHookAlreadyRegistered, addr)
	}
	list.Hooks = append(list.Hooks, addr)
	return r.hooks.Set(ctx, list)
}

// Remove drops addr from the registry, keeping the order of the others.
func (r HookRegistry) Remove(ctx context.Context, addr string) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	idx := slices.Index(list.Hooks, addr)
	if idx < 0 {
		return errorsmod.Wrap(types.ErrHookNotRegistered, addr)
	}
	list.Hooks = slices.Delete(list.Hooks, idx, idx+1)
	return r.hooks.Set(ctx, list)
}

// Prepare builds one execute message per hook, in registration order, each
// carrying diff. Nothing is sent here; the host dispatches the messages after
// the request commits.
func (r HookRegistry) Prepare(ctx context.Context, diff types.MemberDiff) ([]sdk.Msg, error) {
	hooks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(hooks) == 0 {
		return nil, nil
	}

	payload, err := types.MemberChangedHookMsg{Diffs: []types.MemberDiff{diff}}.MarshalExecuteMsg()
	if err != nil {
		return nil, err
	}

	msgs := make([]sdk.Msg, 0, len(hooks))
	for _, hook := range hooks {
		msgs = append(msgs, &wasmtypes.MsgExecuteContract{
			Sender:   r.sender.String(),
			Contract: hook,
			Msg:      payload,
		})
	}
	return msgs, nil
}

func (r HookRegistry) load(ctx context.Context) (types.HookList, error) {
	list, err := r.hooks.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.HookList{}, nil
		}
		return types.HookList{}, err
	}
	return list, nil
}
