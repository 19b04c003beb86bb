package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (k Querier) Config(ctx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	cfg, err := k.Keeper.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryConfigResponse{Config: cfg}, nil
}

// Member returns the current weight of an address, or its weight at a past
// height when AtHeight is set.
func (k Querier) Member(ctx context.Context, req *types.QueryMemberRequest) (*types.QueryMemberResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Addr)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	var weight *uint64
	if req.AtHeight != nil {
		weight, err = k.Members.At(ctx, addr, *req.AtHeight)
	} else {
		weight, err = k.Members.Current(ctx, addr)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get member: %v", err)
	}
	return &types.QueryMemberResponse{Weight: weight}, nil
}

// ListMembers pages through members with a weight in ascending address order.
func (k Querier) ListMembers(ctx context.Context, req *types.QueryListMembersRequest) (*types.QueryListMembersResponse, error) {
	if req == nil {
		req = &types.QueryListMembersRequest{}
	}

	var startAfter sdk.AccAddress
	if req.StartAfter != "" {
		addr, err := sdk.AccAddressFromBech32(req.StartAfter)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid start_after: %v", err)
		}
		startAfter = addr
	}

	members, err := k.Members.List(ctx, startAfter, types.ListLimit(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list members: %v", err)
	}
	return &types.QueryListMembersResponse{Members: members}, nil
}

func (k Querier) TotalWeight(ctx context.Context, _ *types.QueryTotalWeightRequest) (*types.QueryTotalWeightResponse, error) {
	total, err := k.GetTotalWeight(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryTotalWeightResponse{Weight: total}, nil
}

// Staked returns the bonded amount of an address along with the staking denom.
func (k Querier) Staked(ctx context.Context, req *types.QueryStakedRequest) (*types.QueryStakedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	stake, err := k.GetStake(ctx, addr)
	if err != nil {
		return nil, err
	}
	cfg, err := k.Keeper.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryStakedResponse{Stake: stake, Denom: cfg.Denom}, nil
}

// Claims lists the pending claims of an address, oldest first.
func (k Querier) Claims(ctx context.Context, req *types.QueryClaimsRequest) (*types.QueryClaimsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	claims, err := k.Keeper.Claims.Pending(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &types.QueryClaimsResponse{Claims: claims}, nil
}

func (k Querier) Admin(ctx context.Context, _ *types.QueryAdminRequest) (*types.QueryAdminResponse, error) {
	admin, err := k.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryAdminResponse{Admin: admin}, nil
}

func (k Querier) Hooks(ctx context.Context, _ *types.QueryHooksRequest) (*types.QueryHooksResponse, error) {
	hooks, err := k.Keeper.Hooks.List(ctx)
	if err != nil {
		return nil, err
	}
	if hooks == nil {
		hooks = []string{}
	}
	return &types.QueryHooksResponse{Hooks: hooks}, nil
}
