package module_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"

	module "github.com/pushchain/stakegroup/x/stakegroup"
	"github.com/pushchain/stakegroup/x/stakegroup/keeper"
	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

func TestAppModuleGenesis(t *testing.T) {
	logger := log.NewTestLogger(t)
	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	ctx := sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{}, false, logger)

	k := keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger)
	am := module.NewAppModule(k)
	require.Equal(t, types.ModuleName, am.Name())

	admin := simtestutil.CreateIncrementalAccounts(1)[0]
	gs := types.DefaultGenesis()
	gs.Admin = admin.String()
	bz, err := json.Marshal(gs)
	require.NoError(t, err)

	require.NoError(t, am.ValidateGenesis(nil, nil, bz))
	require.Error(t, am.ValidateGenesis(nil, nil, []byte(`{"total_weight":5}`)))

	require.Empty(t, am.InitGenesis(ctx, nil, bz))

	exported, err := types.ParseGenesis(am.ExportGenesis(ctx, nil))
	require.NoError(t, err)
	require.Equal(t, admin.String(), exported.Admin)
	require.Equal(t, gs.Config.String(), exported.Config.String())

	def, err := types.ParseGenesis(am.DefaultGenesis(nil))
	require.NoError(t, err)
	require.NoError(t, def.Validate())
}
