package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/stakegroup/x/stakegroup/types"
)

// MemberSnapshots keeps the current weight of every account together with an
// append-only changelog keyed by (account, height), so the weight at any past
// height can be looked up.
type MemberSnapshots struct {
	current   collections.Map[sdk.AccAddress, *uint64]
	changelog collections.Map[collections.Pair[sdk.AccAddress, uint64], *uint64]
}

func NewMemberSnapshots(sb *collections.SchemaBuilder) MemberSnapshots {
	return MemberSnapshots{
		current: collections.NewMap(
			sb,
			types.MembersKey,
			types.MembersName,
			sdk.AccAddressKey,
			types.WeightValue,
		),
		changelog: collections.NewMap(
			sb,
			types.MemberChangelogKey,
			types.MemberChangelogName,
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			types.WeightValue,
		),
	}
}

// Current returns the latest weight of addr; nil if it is not a member.
func (s MemberSnapshots) Current(ctx context.Context, addr sdk.AccAddress) (*uint64, error) {
	w, err := s.current.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// At returns the weight of addr as it stood after all changes made at or
// before height. Accounts without any record that old are not members.
func (s MemberSnapshots) At(ctx context.Context, addr sdk.AccAddress, height uint64) (*uint64, error) {
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr).
		EndInclusive(height).
		Descending()

	iter, err := s.changelog.Iterate(ctx, rng)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	if !iter.Valid() {
		return nil, nil
	}
	return iter.Value()
}

// Set records weight as the current weight of addr from height on. It returns
// false without writing anything when the weight is unchanged. A second change
// at the same height overwrites the first changelog entry.
func (s MemberSnapshots) Set(ctx context.Context, addr sdk.AccAddress, weight *uint64, height uint64) (bool, error) {
	old, err := s.Current(ctx, addr)
	if err != nil {
		return false, err
	}
	if types.WeightEqual(old, weight) {
		return false, nil
	}

	if err := s.current.Set(ctx, addr, weight); err != nil {
		return false, err
	}
	if err := s.changelog.Set(ctx, collections.Join(addr, height), weight); err != nil {
		return false, err
	}
	return true, nil
}

// Remove ends the membership of addr at height.
func (s MemberSnapshots) Remove(ctx context.Context, addr sdk.AccAddress, height uint64) (bool, error) {
	return s.Set(ctx, addr, nil, height)
}

// Walk visits the current record of every account that ever had one, in
// ascending order of the address bytes (which differs from bech32 string
// order), starting after startAfter when it is non-nil.
// Former members are visited with a nil weight.
func (s MemberSnapshots) Walk(
	ctx context.Context,
	startAfter sdk.AccAddress,
	fn func(addr sdk.AccAddress, weight *uint64) (stop bool, err error),
) error {
	var rng collections.Ranger[sdk.AccAddress]
	if startAfter != nil {
		rng = new(collections.Range[sdk.AccAddress]).StartExclusive(startAfter)
	}
	return s.current.Walk(ctx, rng, fn)
}

// List returns up to limit members with a weight, ascending by address bytes.
func (s MemberSnapshots) List(ctx context.Context, startAfter sdk.AccAddress, limit int) ([]types.Member, error) {
	members := make([]types.Member, 0, limit)
	if limit == 0 {
		return members, nil
	}

	err := s.Walk(ctx, startAfter, func(addr sdk.AccAddress, weight *uint64) (bool, error) {
		if weight == nil {
			return false, nil
		}
		members = append(members, types.Member{Addr: addr.String(), Weight: *weight})
		return len(members) >= limit, nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// History returns the changelog of addr, oldest first.
func (s MemberSnapshots) History(ctx context.Context, addr sdk.AccAddress) ([]types.Checkpoint, error) {
	var history []types.Checkpoint
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr)
	err := s.changelog.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, uint64], weight *uint64) (bool, error) {
		history = append(history, types.Checkpoint{
			Address: key.K1().String(),
			Height:  key.K2(),
			Weight:  weight,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// walkChangelog visits every changelog entry of every account.
func (s MemberSnapshots) walkChangelog(ctx context.Context, fn func(types.Checkpoint) error) error {
	return s.changelog.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, uint64], weight *uint64) (bool, error) {
		err := fn(types.Checkpoint{Address: key.K1().String(), Height: key.K2(), Weight: weight})
		return false, err
	})
}

// restore writes records verbatim; used when importing genesis.
func (s MemberSnapshots) restore(ctx context.Context, addr sdk.AccAddress, weight *uint64) error {
	return s.current.Set(ctx, addr, weight)
}

func (s MemberSnapshots) restoreCheckpoint(ctx context.Context, addr sdk.AccAddress, height uint64, weight *uint64) error {
	return s.changelog.Set(ctx, collections.Join(addr, height), weight)
}
