package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MessageInfo is the authenticated caller of a request and the native funds
// attached to it.
type MessageInfo struct {
	Sender sdk.AccAddress
	Funds  sdk.Coins
}

// ExecuteMsg is the closed set of requests handled by Keeper.Execute.
type ExecuteMsg interface {
	ValidateBasic() error

	isExecuteMsg()
}

var (
	_ ExecuteMsg = MsgBond{}
	_ ExecuteMsg = MsgUnbond{}
	_ ExecuteMsg = MsgClaim{}
	_ ExecuteMsg = MsgReceive{}
	_ ExecuteMsg = MsgUpdateAdmin{}
	_ ExecuteMsg = MsgAddHook{}
	_ ExecuteMsg = MsgRemoveHook{}
)

// MsgBond bonds the native funds attached to the request.
type MsgBond struct{}

// MsgUnbond starts unbonding Tokens; they can be claimed after the unbonding
// period.
type MsgUnbond struct {
	Tokens sdkmath.Int `json:"tokens"`
}

// MsgClaim withdraws every matured claim of the sender.
type MsgClaim struct{}

// MsgReceive is sent by a cw20 contract when Sender transferred Amount of it
// to the module. Msg carries the embedded ReceiveMsg.
type MsgReceive struct {
	Sender string          `json:"sender"`
	Amount sdkmath.Int     `json:"amount"`
	Msg    json.RawMessage `json:"msg"`
}

// MsgUpdateAdmin replaces the admin. An empty Admin clears it.
type MsgUpdateAdmin struct {
	Admin string `json:"admin,omitempty"`
}

// MsgAddHook registers a contract to be notified of weight changes.
type MsgAddHook struct {
	Addr string `json:"addr"`
}

// MsgRemoveHook unregisters a hook contract.
type MsgRemoveHook struct {
	Addr string `json:"addr"`
}

func (MsgBond) isExecuteMsg()        {}
func (MsgUnbond) isExecuteMsg()      {}
func (MsgClaim) isExecuteMsg()       {}
func (MsgReceive) isExecuteMsg()     {}
func (MsgUpdateAdmin) isExecuteMsg() {}
func (MsgAddHook) isExecuteMsg()     {}
func (MsgRemoveHook) isExecuteMsg()  {}

func (MsgBond) ValidateBasic() error { return nil }

func (m MsgUnbond) ValidateBasic() error {
	if m.Tokens.IsNil() || !m.Tokens.IsPositive() {
		return errorsmod.Wrap(ErrInvalidRequest, "unbond amount must be positive")
	}
	return nil
}

func (MsgClaim) ValidateBasic() error { return nil }

func (m MsgReceive) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "invalid receive sender (%s)", err)
	}
	if m.Amount.IsNil() || m.Amount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidRequest, "receive amount must not be negative")
	}
	return nil
}

func (m MsgUpdateAdmin) ValidateBasic() error {
	if m.Admin == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return nil
}

func (m MsgAddHook) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "invalid hook address (%s)", err)
	}
	return nil
}

func (m MsgRemoveHook) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "invalid hook address (%s)", err)
	}
	return nil
}

// Response is the outcome of a successful request: messages the host must
// dispatch after commit and the attributes describing the action.
type Response struct {
	Messages   []sdk.Msg
	Attributes []sdk.Attribute
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) AddMessages(msgs ...sdk.Msg) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, sdk.NewAttribute(key, value))
	return r
}

// Attribute returns the value of the first attribute with the given key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
