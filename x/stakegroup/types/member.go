package types

import (
	"encoding/json"
	"slices"
)

// Member is one entry of a member listing.
type Member struct {
	Addr   string `json:"addr"`
	Weight uint64 `json:"weight"`
}

// MemberDiff describes a single weight change. Old and New are nil for a
// non-member.
type MemberDiff struct {
	Key string  `json:"key"`
	Old *uint64 `json:"old"`
	New *uint64 `json:"new"`
}

func NewMemberDiff(addr string, oldWeight, newWeight *uint64) MemberDiff {
	return MemberDiff{Key: addr, Old: oldWeight, New: newWeight}
}

// MemberChangedHookMsg is the payload delivered to every registered hook.
type MemberChangedHookMsg struct {
	Diffs []MemberDiff `json:"diffs"`
}

// MarshalExecuteMsg wraps the payload in the envelope the hook contracts
// expect: {"member_changed_hook":{"diffs":[...]}}.
func (m MemberChangedHookMsg) MarshalExecuteMsg() ([]byte, error) {
	return json.Marshal(struct {
		MemberChangedHook MemberChangedHookMsg `json:"member_changed_hook"`
	}{m})
}

// HookList is the ordered set of addresses notified on weight changes.
type HookList struct {
	Hooks []string `json:"hooks"`
}

func (h HookList) Contains(addr string) bool {
	return slices.Contains(h.Hooks, addr)
}
