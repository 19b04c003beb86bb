package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState *types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	if err := k.Instantiate(ctx, genState.Config, genState.Admin); err != nil {
		return errorsmod.Wrap(err, "failed to set config")
	}
	if err := k.Total.Set(ctx, genState.TotalWeight); err != nil {
		return err
	}

	for _, s := range genState.Stakes {
		addr := sdk.MustAccAddressFromBech32(s.Address)
		if err := k.Stake.Set(ctx, addr, s.Amount); err != nil {
			return err
		}
	}

	for _, m := range genState.Members {
		addr := sdk.MustAccAddressFromBech32(m.Address)
		if err := k.Members.restore(ctx, addr, m.Weight); err != nil {
			return err
		}
	}

	for _, c := range genState.History {
		addr := sdk.MustAccAddressFromBech32(c.Address)
		if err := k.Members.restoreCheckpoint(ctx, addr, c.Height, c.Weight); err != nil {
			return err
		}
	}

	// claims are re-queued in export order, which keeps them oldest first
	for _, c := range genState.Claims {
		addr := sdk.MustAccAddressFromBech32(c.Address)
		if err := k.Claims.Create(ctx, addr, c.Claim.Amount, c.Claim.ReleaseAt); err != nil {
			return err
		}
	}

	for _, h := range genState.Hooks {
		if err := k.Hooks.Add(ctx, h); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	admin, err := k.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	total, err := k.GetTotalWeight(ctx)
	if err != nil {
		return nil, err
	}

	genesis := &types.GenesisState{
		Config:      cfg,
		Admin:       admin,
		TotalWeight: total,
		Stakes:      []types.StakeRecord{},
		Members:     []types.MemberRecord{},
		History:     []types.Checkpoint{},
		Claims:      []types.ClaimRecord{},
	}

	err = k.Stake.Walk(ctx, nil, func(addr sdk.AccAddress, amount sdkmath.Int) (bool, error) {
		genesis.Stakes = append(genesis.Stakes, types.StakeRecord{Address: addr.String(), Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Members.Walk(ctx, nil, func(addr sdk.AccAddress, weight *uint64) (bool, error) {
		genesis.Members = append(genesis.Members, types.MemberRecord{Address: addr.String(), Weight: weight})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Members.walkChangelog(ctx, func(c types.Checkpoint) error {
		genesis.History = append(genesis.History, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Claims.Walk(ctx, func(addr sdk.AccAddress, claim types.Claim) error {
		genesis.Claims = append(genesis.Claims, types.ClaimRecord{Address: addr.String(), Claim: claim})
		return nil
	})
	if err != nil {
		return nil, err
	}

	genesis.Hooks, err = k.Hooks.List(ctx)
	if err != nil {
		return nil, err
	}
	if genesis.Hooks == nil {
		genesis.Hooks = []string{}
	}

	return genesis, nil
}
