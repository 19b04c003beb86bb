package keeper_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

func TestQueryMember(t *testing.T) {
	f := SetupTest(t)
	u1 := f.addrs[1]

	f.bond(t, u1, 6_000)
	f.setHeight(4)
	f.bond(t, u1, 3_000)

	resp, err := f.queryServer.Member(f.ctx, &types.QueryMemberRequest{Addr: u1.String()})
	require.NoError(t, err)
	require.Equal(t, types.Weight(9), resp.Weight)

	at := uint64(3)
	resp, err = f.queryServer.Member(f.ctx, &types.QueryMemberRequest{Addr: u1.String(), AtHeight: &at})
	require.NoError(t, err)
	require.Equal(t, types.Weight(6), resp.Weight)

	at = 0
	resp, err = f.queryServer.Member(f.ctx, &types.QueryMemberRequest{Addr: u1.String(), AtHeight: &at})
	require.NoError(t, err)
	require.Nil(t, resp.Weight)

	resp, err = f.queryServer.Member(f.ctx, &types.QueryMemberRequest{Addr: f.addrs[2].String()})
	require.NoError(t, err)
	require.Nil(t, resp.Weight)

	_, err = f.queryServer.Member(f.ctx, &types.QueryMemberRequest{Addr: "nope"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.queryServer.Member(f.ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryListMembers(t *testing.T) {
	f := SetupTest(t)

	stakers := f.addrs[1:6]
	for i, addr := range stakers {
		f.bond(t, addr, int64(5_000+1_000*i))
	}
	// a former member is skipped
	f.unbond(t, stakers[2], 7_000)

	all, err := f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{})
	require.NoError(t, err)
	require.Len(t, all.Members, 4)
	for i := 1; i < len(all.Members); i++ {
		prev := sdk.MustAccAddressFromBech32(all.Members[i-1].Addr)
		cur := sdk.MustAccAddressFromBech32(all.Members[i].Addr)
		require.Negative(t, bytes.Compare(prev, cur), "members must be ordered by address")
	}

	limit := uint32(2)
	page1, err := f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{Limit: &limit})
	require.NoError(t, err)
	require.Equal(t, all.Members[:2], page1.Members)

	page2, err := f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{
		StartAfter: page1.Members[1].Addr,
		Limit:      &limit,
	})
	require.NoError(t, err)
	require.Equal(t, all.Members[2:], page2.Members)

	page3, err := f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{
		StartAfter: page2.Members[1].Addr,
		Limit:      &limit,
	})
	require.NoError(t, err)
	require.Empty(t, page3.Members)

	_, err = f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{StartAfter: "nope"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryListMembersDefaultLimit(t *testing.T) {
	f := SetupTest(t)

	addrs := simAddrs(int(types.MaxListLimit) + 5)
	for _, addr := range addrs {
		f.bond(t, addr, minBond)
	}

	resp, err := f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Members, int(types.DefaultListLimit))

	limit := uint32(1_000)
	resp, err = f.queryServer.ListMembers(f.ctx, &types.QueryListMembersRequest{Limit: &limit})
	require.NoError(t, err)
	require.Len(t, resp.Members, int(types.MaxListLimit))
}

func TestQueryTotalAndStake(t *testing.T) {
	f := SetupTest(t)
	u1, u2 := f.addrs[1], f.addrs[2]

	f.bond(t, u1, 12_000)
	f.bond(t, u2, 4_000)

	total, err := f.queryServer.TotalWeight(f.ctx, &types.QueryTotalWeightRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(12), total.Weight)

	staked, err := f.queryServer.Staked(f.ctx, &types.QueryStakedRequest{Address: u2.String()})
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(4_000), staked.Stake)
	require.Equal(t, types.NativeDenom(denom), staked.Denom)

	staked, err = f.queryServer.Staked(f.ctx, &types.QueryStakedRequest{Address: f.addrs[3].String()})
	require.NoError(t, err)
	require.True(t, staked.Stake.IsZero())

	_, err = f.queryServer.Staked(f.ctx, &types.QueryStakedRequest{Address: "nope"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryClaims(t *testing.T) {
	f := SetupTest(t)
	u1 := f.addrs[1]

	resp, err := f.queryServer.Claims(f.ctx, &types.QueryClaimsRequest{Address: u1.String()})
	require.NoError(t, err)
	require.NotNil(t, resp.Claims)
	require.Empty(t, resp.Claims)

	f.bond(t, u1, 12_000)
	f.unbond(t, u1, 1_000)
	f.setHeight(7)
	f.unbond(t, u1, 2_000)

	resp, err = f.queryServer.Claims(f.ctx, &types.QueryClaimsRequest{Address: u1.String()})
	require.NoError(t, err)
	require.Len(t, resp.Claims, 2)
	require.Equal(t, sdkmath.NewInt(1_000), resp.Claims[0].Amount)
	require.True(t, resp.Claims[0].ReleaseAt.Equal(types.AtHeight(1+unbondingBlocks)))
	require.Equal(t, sdkmath.NewInt(2_000), resp.Claims[1].Amount)
	require.True(t, resp.Claims[1].ReleaseAt.Equal(types.AtHeight(7+unbondingBlocks)))
}

func TestQueryAdminHooksConfig(t *testing.T) {
	f := SetupTest(t)

	admin, err := f.queryServer.Admin(f.ctx, &types.QueryAdminRequest{})
	require.NoError(t, err)
	require.Equal(t, f.admin.String(), admin.Admin)

	hooks, err := f.queryServer.Hooks(f.ctx, &types.QueryHooksRequest{})
	require.NoError(t, err)
	require.NotNil(t, hooks.Hooks)
	require.Empty(t, hooks.Hooks)

	_, err = f.execute(f.admin, nil, types.MsgAddHook{Addr: f.addrs[5].String()})
	require.NoError(t, err)
	hooks, err = f.queryServer.Hooks(f.ctx, &types.QueryHooksRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{f.addrs[5].String()}, hooks.Hooks)

	cfg, err := f.queryServer.Config(f.ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(tokensPerWeight), cfg.Config.TokensPerWeight)
	require.Equal(t, types.NativeDenom(denom), cfg.Config.Denom)
}
