package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

type Keeper struct {
	logger log.Logger

	Schema collections.Schema

	// state management
	Config collections.Item[types.Config]
	// Admin is absent when nobody may manage hooks.
	Admin  collections.Item[string]
	// Total is the sum of all current member weights.
	Total  collections.Item[uint64]
	// Stake is the bonded amount per account.
	Stake  collections.Map[sdk.AccAddress, sdkmath.Int]

	Members MemberSnapshots
	Claims  ClaimsQueue
	Hooks   HookRegistry

	// moduleAddr signs every outbound message the module produces
	moduleAddr sdk.AccAddress
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)

	k := Keeper{
		logger: logger,

		Config: collections.NewItem(sb, types.ConfigKey, types.ConfigName, types.JSONValue[types.Config]()),
		Admin:  collections.NewItem(sb, types.AdminKey, types.AdminName, collections.StringValue),
		Total:  collections.NewItem(sb, types.TotalWeightKey, types.TotalWeightName, collections.Uint64Value),
		Stake: collections.NewMap(
			sb,
			types.StakeKey,
			types.StakeName,
			sdk.AccAddressKey,
			sdk.IntValue,
		),

		Members: NewMemberSnapshots(sb),
		Claims:  NewClaimsQueue(sb),
		Hooks:   NewHookRegistry(sb, moduleAddr),

		moduleAddr: moduleAddr,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// ModuleAddress is the account that holds bonded funds and signs payouts.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// Instantiate stores the config and the admin, and resets the total weight.
// An empty admin leaves the module without one. minBond is clamped by
// types.NewConfig before it reaches here.
func (k Keeper) Instantiate(ctx context.Context, cfg types.Config, admin string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := k.Config.Set(ctx, cfg); err != nil {
		return err
	}
	if admin == "" {
		if err := k.Admin.Remove(ctx); err != nil {
			return err
		}
	} else if err := k.Admin.Set(ctx, admin); err != nil {
		return err
	}
	return k.Total.Set(ctx, 0)
}

// GetStake returns the bonded amount of addr, zero if it never bonded.
func (k Keeper) GetStake(ctx context.Context, addr sdk.AccAddress) (sdkmath.Int, error) {
	stake, err := k.Stake.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return stake, nil
}

// GetTotalWeight returns the running total of member weights.
func (k Keeper) GetTotalWeight(ctx context.Context) (uint64, error) {
	total, err := k.Total.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}

// GetAdmin returns the admin address, or "" when none is set.
func (k Keeper) GetAdmin(ctx context.Context) (string, error) {
	admin, err := k.Admin.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return admin, nil
}

// SumWeights recomputes the total weight from the current member records.
func (k Keeper) SumWeights(ctx context.Context) (uint64, error) {
	var sum uint64
	err := k.Members.Walk(ctx, nil, func(_ sdk.AccAddress, weight *uint64) (bool, error) {
		sum += types.WeightOrZero(weight)
		return false, nil
	})
	if err != nil {
		return 0, err
	}
	return sum, nil
}

func blockInfo(ctx context.Context) (sdk.Context, uint64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx, uint64(sdkCtx.BlockHeight())
}
