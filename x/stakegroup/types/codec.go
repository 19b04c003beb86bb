package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"reflect"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue stores a plain Go struct as its JSON encoding.
func JSONValue[T any]() collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{}
}

type jsonValueCodec[T any] struct{}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (jsonValueCodec[T]) ValueType() string {
	var value T
	return "json/" + reflect.TypeOf(&value).Elem().String()
}

// WeightValue stores an optional weight as a presence byte followed by the
// big-endian weight.
var WeightValue collcodec.ValueCodec[*uint64] = weightValueCodec{}

type weightValueCodec struct{}

const (
	weightAbsent  byte = 0
	weightPresent byte = 1
)

func (weightValueCodec) Encode(w *uint64) ([]byte, error) {
	if w == nil {
		return []byte{weightAbsent}, nil
	}
	bz := make([]byte, 9)
	bz[0] = weightPresent
	binary.BigEndian.PutUint64(bz[1:], *w)
	return bz, nil
}

func (weightValueCodec) Decode(b []byte) (*uint64, error) {
	switch {
	case len(b) == 1 && b[0] == weightAbsent:
		return nil, nil
	case len(b) == 9 && b[0] == weightPresent:
		return Weight(binary.BigEndian.Uint64(b[1:])), nil
	default:
		return nil, fmt.Errorf("invalid weight encoding %x", b)
	}
}

func (weightValueCodec) EncodeJSON(w *uint64) ([]byte, error) {
	return json.Marshal(w)
}

func (weightValueCodec) DecodeJSON(b []byte) (*uint64, error) {
	var w *uint64
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return w, nil
}

func (weightValueCodec) Stringify(w *uint64) string {
	return FormatWeight(w)
}

func (weightValueCodec) ValueType() string {
	return "stakegroup/weight"
}
