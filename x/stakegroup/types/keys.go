package types

import (
	"cosmossdk.io/collections"
)

var (
	// ConfigKey saves the module configuration.
	ConfigKey = collections.NewPrefix(0)

	// ConfigName is the name of the config collection.
	ConfigName = "config"

	// AdminKey saves the address allowed to manage hooks and rotate itself.
	AdminKey = collections.NewPrefix(1)

	// AdminName is the name of the admin collection.
	AdminName = "admin"

	// TotalWeightKey saves the running sum of all member weights.
	TotalWeightKey = collections.NewPrefix(2)

	// TotalWeightName is the name of the total weight collection.
	TotalWeightName = "total_weight"

	// StakeKey is the prefix of the bonded amount per account.
	StakeKey = collections.NewPrefix(3)

	// StakeName is the name of the stake collection.
	StakeName = "stake"

	// MembersKey is the prefix of the current weight per account.
	MembersKey = collections.NewPrefix(4)

	// MembersName is the name of the members collection.
	MembersName = "members"

	// MemberChangelogKey is the prefix of the (account, height) -> weight history.
	MemberChangelogKey = collections.NewPrefix(5)

	// MemberChangelogName is the name of the member changelog collection.
	MemberChangelogName = "member_changelog"

	// ClaimsKey is the prefix of the (account, sequence) -> claim queue.
	ClaimsKey = collections.NewPrefix(6)

	// ClaimsName is the name of the claims collection.
	ClaimsName = "claims"

	// ClaimSequenceKey saves the next claim sequence number.
	ClaimSequenceKey = collections.NewPrefix(7)

	// ClaimSequenceName is the name of the claim sequence.
	ClaimSequenceName = "claim_sequence"

	// HooksKey saves the ordered list of hook addresses.
	HooksKey = collections.NewPrefix(8)

	// HooksName is the name of the hooks collection.
	HooksName = "hooks"
)

const (
	ModuleName = "stakegroup"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)

// pagination settings for member listings
const (
	DefaultListLimit uint32 = 10
	MaxListLimit     uint32 = 30
)
