package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

const totalWeightInvariant = "total-weight"

// RegisterInvariants registers the stakegroup module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, totalWeightInvariant, TotalWeightInvariant(k))
}

// TotalWeightInvariant checks that the stored total equals the sum of all
// current member weights.
func TotalWeightInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total, err := k.GetTotalWeight(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, totalWeightInvariant, err.Error()), true
		}
		sum, err := k.SumWeights(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, totalWeightInvariant, err.Error()), true
		}

		broken := total != sum
		return sdk.FormatInvariant(
			types.ModuleName,
			totalWeightInvariant,
			fmt.Sprintf("stored total %d, sum of member weights %d", total, sum),
		), broken
	}
}
