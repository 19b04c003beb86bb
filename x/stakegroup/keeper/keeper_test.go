package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
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

const (
	denom           = "stake"
	tokensPerWeight = 1_000
	minBond         = 5_000
	unbondingBlocks = 100
)

var genesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type testFixture struct {
	ctx         sdk.Context
	k           keeper.Keeper
	queryServer keeper.Querier
	appModule   *module.AppModule

	addrs []sdk.AccAddress
	admin sdk.AccAddress
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	// Base setup
	logger := log.NewTestLogger(t)

	f.addrs = simtestutil.CreateIncrementalAccounts(8)
	f.admin = f.addrs[0]

	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	f.ctx = sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{}, false, logger).
		WithBlockHeight(1).
		WithBlockTime(genesisTime)

	// Setup Keeper.
	f.k = keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger)
	f.queryServer = keeper.NewQuerier(f.k)
	f.appModule = module.NewAppModule(f.k)

	cfg := types.NewConfig(
		types.NativeDenom(denom),
		sdkmath.NewInt(tokensPerWeight),
		sdkmath.NewInt(minBond),
		types.HeightDuration(unbondingBlocks),
	)
	require.NoError(t, f.k.Instantiate(f.ctx, cfg, f.admin.String()))

	return f
}

// execute runs msg the way the host does: in a cache context that is only
// written back when the request succeeds.
func (f *testFixture) execute(sender sdk.AccAddress, funds sdk.Coins, msg types.ExecuteMsg) (*types.Response, error) {
	cacheCtx, write := f.ctx.CacheContext()
	res, err := f.k.Execute(cacheCtx, types.MessageInfo{Sender: sender, Funds: funds}, msg)
	if err != nil {
		return nil, err
	}
	write()
	return res, nil
}

func (f *testFixture) bond(t *testing.T, addr sdk.AccAddress, amount int64) *types.Response {
	t.Helper()
	res, err := f.execute(addr, sdk.NewCoins(sdk.NewInt64Coin(denom, amount)), types.MsgBond{})
	require.NoError(t, err)
	return res
}

func (f *testFixture) unbond(t *testing.T, addr sdk.AccAddress, amount int64) *types.Response {
	t.Helper()
	res, err := f.execute(addr, nil, types.MsgUnbond{Tokens: sdkmath.NewInt(amount)})
	require.NoError(t, err)
	return res
}

func simAddrs(n int) []sdk.AccAddress {
	return simtestutil.CreateIncrementalAccounts(n)
}

func (f *testFixture) setHeight(height int64) {
	f.ctx = f.ctx.WithBlockHeight(height)
}

func (f *testFixture) advance(blocks int64, d time.Duration) {
	f.ctx = f.ctx.
		WithBlockHeight(f.ctx.BlockHeight() + blocks).
		WithBlockTime(f.ctx.BlockTime().Add(d))
}

func (f *testFixture) requireWeight(t *testing.T, addr sdk.AccAddress, want *uint64) {
	t.Helper()
	got, err := f.k.Members.Current(f.ctx, addr)
	require.NoError(t, err)
	require.True(t, types.WeightEqual(want, got), "%s: expected weight %s, got %s", addr, types.FormatWeight(want), types.FormatWeight(got))
}

func (f *testFixture) requireWeightAt(t *testing.T, addr sdk.AccAddress, height uint64, want *uint64) {
	t.Helper()
	got, err := f.k.Members.At(f.ctx, addr, height)
	require.NoError(t, err)
	require.True(t, types.WeightEqual(want, got), "%s at %d: expected weight %s, got %s", addr, height, types.FormatWeight(want), types.FormatWeight(got))
}

func (f *testFixture) requireTotal(t *testing.T, want uint64) {
	t.Helper()
	total, err := f.k.GetTotalWeight(f.ctx)
	require.NoError(t, err)
	require.Equal(t, want, total)

	sum, err := f.k.SumWeights(f.ctx)
	require.NoError(t, err)
	require.Equal(t, want, sum, "total weight drifted from member sum")
}

func (f *testFixture) requireStake(t *testing.T, addr sdk.AccAddress, want int64) {
	t.Helper()
	stake, err := f.k.GetStake(f.ctx, addr)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(want), stake)
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

type KeeperTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.fixture = SetupTest(suite.T())
}

func (suite *KeeperTestSuite) TestInstantiate() {
	f := suite.fixture

	cfg, err := f.k.Config.Get(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.NativeDenom(denom), cfg.Denom)
	suite.Require().Equal(sdkmath.NewInt(minBond), cfg.MinBond)

	admin, err := f.k.GetAdmin(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(f.admin.String(), admin)

	total, err := f.k.GetTotalWeight(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Zero(total)
}

func (suite *KeeperTestSuite) TestInstantiateRejectsInvalidConfig() {
	f := suite.fixture

	cfg := types.DefaultConfig()
	cfg.UnbondingPeriod = types.Duration{}
	suite.Require().ErrorIs(f.k.Instantiate(f.ctx, cfg, ""), types.ErrInvalidConfig)
}

func (suite *KeeperTestSuite) TestModuleAddress() {
	f := suite.fixture
	suite.Require().False(f.k.ModuleAddress().Empty())
	suite.Require().NotEqual(f.admin, f.k.ModuleAddress())
}
