package types

import (
	sdkmath "cosmossdk.io/math"
)

type QueryMemberRequest struct {
	Addr     string  `json:"addr"`
	AtHeight *uint64 `json:"at_height,omitempty"`
}

type QueryMemberResponse struct {
	Weight *uint64 `json:"weight"`
}

// QueryListMembersRequest pages through members ordered by the raw bytes of
// their account address, not by the bech32 string. StartAfter is decoded to
// bytes before it is compared, so pass the last address of the previous page.
type QueryListMembersRequest struct {
	StartAfter string  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type QueryListMembersResponse struct {
	Members []Member `json:"members"`
}

type QueryTotalWeightRequest struct{}

type QueryTotalWeightResponse struct {
	Weight uint64 `json:"weight"`
}

type QueryStakedRequest struct {
	Address string `json:"address"`
}

type QueryStakedResponse struct {
	Stake sdkmath.Int `json:"stake"`
	Denom Denom       `json:"denom"`
}

type QueryClaimsRequest struct {
	Address string `json:"address"`
}

type QueryClaimsResponse struct {
	Claims []Claim `json:"claims"`
}

type QueryAdminRequest struct{}

type QueryAdminResponse struct {
	Admin string `json:"admin,omitempty"`
}

type QueryHooksRequest struct{}

type QueryHooksResponse struct {
	Hooks []string `json:"hooks"`
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

// ListLimit applies the default and the upper bound to a requested page size.
func ListLimit(limit *uint32) int {
	if limit == nil {
		return int(DefaultListLimit)
	}
	return int(min(*limit, MaxListLimit))
}
