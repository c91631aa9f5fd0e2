package rsakey

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

// ValueKind tags the shape of a Value.
type ValueKind int

const (
	// KindHex is a hex string, optionally prefixed with "0x".
	KindHex ValueKind = iota + 1
	// KindInteger is an arbitrary-precision unsigned integer.
	KindInteger
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Value is the caller-facing input and output of Apply: either a hex string or an integer.
// The shape is fixed when the Value is built and Apply answers in the same shape.
type Value struct {
	kind    ValueKind
	hex     string
	integer *big.Int
}

// HexValue wraps a hex string.
func HexValue(s string) Value {
	return Value{kind: KindHex, hex: s}
}

// IntegerValue wraps a copy of i.
func IntegerValue(i *big.Int) Value {
	if i == nil {
		return Value{}
	}
	return Value{kind: KindInteger, integer: new(big.Int).Set(i)}
}

// ValueOf classifies an arbitrary Go value. Strings become hex values; *big.Int,
// the built-in integer types and integral json.Number literals become integer values.
// Every other shape fails with cryptoerr.ErrUnsupportedValueType.
func ValueOf(v interface{}) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return HexValue(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return IntegerValue(x), nil
	case json.Number:
		i, ok := new(big.Int).SetString(x.String(), 10)
		if !ok {
			return Value{}, fmt.Errorf("number %s is not an integer: %w", x, cryptoerr.ErrUnsupportedValueType)
		}
		return IntegerValue(i), nil
	case int:
		return IntegerValue(big.NewInt(int64(x))), nil
	case int8:
		return IntegerValue(big.NewInt(int64(x))), nil
	case int16:
		return IntegerValue(big.NewInt(int64(x))), nil
	case int32:
		return IntegerValue(big.NewInt(int64(x))), nil
	case int64:
		return IntegerValue(big.NewInt(x)), nil
	case uint:
		return IntegerValue(new(big.Int).SetUint64(uint64(x))), nil
	case uint8:
		return IntegerValue(new(big.Int).SetUint64(uint64(x))), nil
	case uint16:
		return IntegerValue(new(big.Int).SetUint64(uint64(x))), nil
	case uint32:
		return IntegerValue(new(big.Int).SetUint64(uint64(x))), nil
	case uint64:
		return IntegerValue(new(big.Int).SetUint64(x)), nil
	}
	return Value{}, fmt.Errorf("cannot apply a key to %T: %w", v, cryptoerr.ErrUnsupportedValueType)
}

// Kind returns the shape of v. The zero Value has no kind.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Hex returns the hex text when v is a hex value.
func (v Value) Hex() (string, bool) {
	return v.hex, v.kind == KindHex
}

// Integer returns a copy of the integer when v is an integer value.
func (v Value) Integer() (*big.Int, bool) {
	if v.kind != KindInteger {
		return nil, false
	}
	return new(big.Int).Set(v.integer), true
}

// Interface returns the underlying string or *big.Int, or nil for the zero Value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindHex:
		return v.hex
	case KindInteger:
		return new(big.Int).Set(v.integer)
	}
	return nil
}

// String renders the value in its own shape: the hex text, or the integer in decimal.
func (v Value) String() string {
	switch v.kind {
	case KindHex:
		return v.hex
	case KindInteger:
		return v.integer.String()
	}
	return "<invalid>"
}

// Equal reports whether both values have the same shape and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindHex:
		return v.hex == other.hex
	case KindInteger:
		return v.integer.Cmp(other.integer) == 0
	}
	return true
}

// ApplyValue coerces v into the bigint core, applies k and coerces the result back to the
// shape of v.
func ApplyValue(k RSAKey, v Value) (Value, error) {
	switch v.kind {
	case KindHex:
		x, err := HexToBigInteger(v.hex)
		if err != nil {
			return Value{}, err
		}
		r, err := k.Apply(x)
		if err != nil {
			return Value{}, err
		}
		return HexValue(BigIntegerToHex(r)), nil

	case KindInteger:
		x, err := IntegerToBigInteger(v.integer)
		if err != nil {
			return Value{}, err
		}
		r, err := k.Apply(x)
		if err != nil {
			return Value{}, err
		}
		i, err := BigIntegerToInteger(r)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindInteger, integer: i}, nil
	}
	return Value{}, fmt.Errorf("apply: empty value: %w", cryptoerr.ErrUnsupportedValueType)
}

// HexToBigInteger accepts an optional "0x"/"0X" prefix followed by at least one hex digit.
// Anything else fails with cryptoerr.ErrInvalidHexInput.
func HexToBigInteger(s string) (bigint.BigInteger, error) {
	if !bigint.IsHex(bigint.StripHexPrefix(s)) {
		return bigint.BigInteger{}, fmt.Errorf("value %q is not a hex number: %w", s, cryptoerr.ErrInvalidHexInput)
	}
	x, err := bigint.ParseHex(s)
	if err != nil {
		return bigint.BigInteger{}, fmt.Errorf("value %q: %v: %w", s, err, cryptoerr.ErrInvalidHexInput)
	}
	return x, nil
}

// BigIntegerToHex renders x as "0x" followed by at least two lowercase digits.
func BigIntegerToHex(x bigint.BigInteger) string {
	return "0x" + x.PaddedHex(2)
}

// unsignedWidth is the byte count used to move an integer of bitLen bits across the
// boundary: the magnitude plus one zero byte, so the top bit of the buffer is never set.
func unsignedWidth(bitLen int) int {
	return (bitLen+7)/8 + 1
}

// EncodeUnsigned writes the magnitude of i into a little-endian buffer of
// unsignedWidth(i.BitLen()) bytes. Negative values fail with
// cryptoerr.ErrNegativeValueUnsupported.
func EncodeUnsigned(i *big.Int) ([]byte, error) {
	if i == nil {
		return nil, fmt.Errorf("nil integer: %w", cryptoerr.ErrUnsupportedValueType)
	}
	if i.Sign() < 0 {
		return nil, fmt.Errorf("value %s: %w", i.String(), cryptoerr.ErrNegativeValueUnsupported)
	}
	buf := i.FillBytes(make([]byte, unsignedWidth(i.BitLen())))
	reverse(buf)
	return buf, nil
}

// DecodeUnsigned reads a little-endian unsigned buffer back into a *big.Int.
func DecodeUnsigned(buf []byte) *big.Int {
	be := make([]byte, len(buf))
	copy(be, buf)
	reverse(be)
	return new(big.Int).SetBytes(be)
}

// IntegerToBigInteger moves i into the bigint core through the unsigned little-endian buffer.
func IntegerToBigInteger(i *big.Int) (bigint.BigInteger, error) {
	buf, err := EncodeUnsigned(i)
	if err != nil {
		return bigint.BigInteger{}, err
	}
	return bigint.FromBytes(buf, bigint.LittleEndian), nil
}

// BigIntegerToInteger moves x out of the bigint core through the unsigned little-endian buffer.
func BigIntegerToInteger(x bigint.BigInteger) (*big.Int, error) {
	buf, err := x.ToBytes(unsignedWidth(x.BitLen()))
	if err != nil {
		return nil, err
	}
	return DecodeUnsigned(buf), nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
