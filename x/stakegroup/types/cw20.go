package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// cw20TransferMsg is the execute message that moves cw20 tokens out of the
// module account.
type cw20TransferMsg struct {
	Transfer struct {
		Recipient string      `json:"recipient"`
		Amount    sdkmath.Int `json:"amount"`
	} `json:"transfer"`
}

// NewCw20TransferMsg encodes {"transfer":{"recipient":...,"amount":...}}.
func NewCw20TransferMsg(recipient string, amount sdkmath.Int) ([]byte, error) {
	var msg cw20TransferMsg
	msg.Transfer.Recipient = recipient
	msg.Transfer.Amount = amount
	return json.Marshal(msg)
}

// ReceiveMsg is the message embedded by a cw20 contract when it forwards
// tokens to the module. Bond is the only supported action.
type ReceiveMsg struct {
	Bond *struct{} `json:"bond,omitempty"`
}

// ParseReceiveMsg decodes the embedded cw20 message.
func ParseReceiveMsg(bz []byte) (ReceiveMsg, error) {
	var msg ReceiveMsg
	if err := json.Unmarshal(bz, &msg); err != nil {
		return ReceiveMsg{}, errorsmod.Wrapf(ErrInvalidRequest, "receive msg: %s", err)
	}
	if msg.Bond == nil {
		return ReceiveMsg{}, errorsmod.Wrap(ErrInvalidRequest, "receive msg: unknown variant")
	}
	return msg, nil
}

// BondReceiveMsg is the encoded {"bond":{}} payload.
func BondReceiveMsg() []byte {
	bz, err := json.Marshal(ReceiveMsg{Bond: &struct{}{}})
	if err != nil {
		panic(err)
	}
	return bz
}
