package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

func TestGenesisState_Validate(t *testing.T) {
	alice := sdk.AccAddress([]byte("alice---------------")).String()
	bob := sdk.AccAddress([]byte("bob-----------------")).String()

	valid := func() *types.GenesisState {
		return &types.GenesisState{
			Config:      types.DefaultConfig(),
			Admin:       alice,
			TotalWeight: 7,
			Stakes: []types.StakeRecord{
				{Address: alice, Amount: sdkmath.NewInt(7000)},
				{Address: bob, Amount: sdkmath.NewInt(100)},
			},
			Members: []types.MemberRecord{
				{Address: alice, Weight: types.Weight(7)},
				{Address: bob, Weight: nil},
			},
			History: []types.Checkpoint{
				{Address: alice, Height: 3, Weight: types.Weight(7)},
			},
			Claims: []types.ClaimRecord{
				{Address: bob, Claim: types.NewClaim(sdkmath.NewInt(5000), types.AtHeight(10))},
			},
			Hooks: []string{bob},
		}
	}

	tests := []struct {
		desc   string
		mutate func(gs *types.GenesisState)
		valid  bool
	}{
		{desc: "default is valid", mutate: nil, valid: true},
		{desc: "full state", mutate: func(*types.GenesisState) {}, valid: true},
		{desc: "bad admin", mutate: func(gs *types.GenesisState) { gs.Admin = "nope" }, valid: false},
		{desc: "total mismatch", mutate: func(gs *types.GenesisState) { gs.TotalWeight = 8 }, valid: false},
		{desc: "duplicate stake", mutate: func(gs *types.GenesisState) {
			gs.Stakes = append(gs.Stakes, types.StakeRecord{Address: alice, Amount: sdkmath.OneInt()})
		}, valid: false},
		{desc: "negative stake", mutate: func(gs *types.GenesisState) { gs.Stakes[1].Amount = sdkmath.NewInt(-1) }, valid: false},
		{desc: "zero claim", mutate: func(gs *types.GenesisState) { gs.Claims[0].Claim.Amount = sdkmath.ZeroInt() }, valid: false},
		{desc: "duplicate hook", mutate: func(gs *types.GenesisState) { gs.Hooks = append(gs.Hooks, bob) }, valid: false},
		{desc: "bad config", mutate: func(gs *types.GenesisState) { gs.Config.TokensPerWeight = sdkmath.ZeroInt() }, valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			gs := types.DefaultGenesis()
			if tc.mutate != nil {
				gs = valid()
				tc.mutate(gs)
			}
			err := gs.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
