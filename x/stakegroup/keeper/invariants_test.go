package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pushchain/stakegroup/x/stakegroup/keeper"
)

func TestTotalWeightInvariant(t *testing.T) {
	f := SetupTest(t)
	invariant := keeper.TotalWeightInvariant(f.k)

	f.bond(t, f.addrs[1], 12_000)
	f.bond(t, f.addrs[2], 7_000)
	f.setHeight(2)
	f.unbond(t, f.addrs[2], 3_000)

	msg, broken := invariant(f.ctx)
	require.False(t, broken, msg)

	require.NoError(t, f.k.Total.Set(f.ctx, 1))
	msg, broken = invariant(f.ctx)
	require.True(t, broken)
	require.Contains(t, msg, "stored total 1, sum of member weights 12")
}
