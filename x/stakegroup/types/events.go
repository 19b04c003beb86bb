package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeAction        = ModuleName
	EventTypeMemberChanged = "member_changed"

	AttributeKeyAction    = "action"
	AttributeKeyAmount    = "amount"
	AttributeKeyTokens    = "tokens"
	AttributeKeySender    = "sender"
	AttributeKeyAdmin     = "admin"
	AttributeKeyHook      = "hook"
	AttributeKeyAddr      = "addr"
	AttributeKeyOldWeight = "old_weight"
	AttributeKeyNewWeight = "new_weight"
	AttributeKeyHeight    = "height"

	ActionBond        = "bond"
	ActionUnbond      = "unbond"
	ActionClaim       = "claim"
	ActionUpdateAdmin = "update_admin"
	ActionAddHook     = "add_hook"
	ActionRemoveHook  = "remove_hook"
)

// NewActionEvent turns the attributes of a response into the event emitted
// for the request.
func NewActionEvent(attrs []sdk.Attribute) sdk.Event {
	return sdk.NewEvent(EventTypeAction, attrs...)
}

// NewMemberChangedEvent creates an event recording a weight transition.
func NewMemberChangedEvent(diff MemberDiff, height uint64) sdk.Event {
	return sdk.NewEvent(
		EventTypeMemberChanged,
		sdk.NewAttribute(AttributeKeyAddr, diff.Key),
		sdk.NewAttribute(AttributeKeyOldWeight, FormatWeight(diff.Old)),
		sdk.NewAttribute(AttributeKeyNewWeight, FormatWeight(diff.New)),
		sdk.NewAttribute(AttributeKeyHeight, fmt.Sprintf("%d", height)),
	)
}

// FormatTokens renders an amount with its denom, e.g. "4500 stake".
func FormatTokens(amount sdkmath.Int, denom Denom) string {
	return fmt.Sprintf("%s %s", amount, denom)
}
