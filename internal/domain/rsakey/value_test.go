//go:build unit
// +build unit

package rsakey

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseKey(t *testing.T, text string) RSAKey {
	t.Helper()
	key, err := ParseKey(text)
	require.NoError(t, err)
	return key
}

func TestApplyValue_Hex(t *testing.T) {
	key := mustParseKey(t, "ff,03")

	out, err := ApplyValue(key, HexValue("0x02"))
	require.NoError(t, err)
	assert.Equal(t, KindHex, out.Kind())
	hex, ok := out.Hex()
	require.True(t, ok)
	assert.Equal(t, "0x08", hex)

	out, err = ApplyValue(key, HexValue("02"))
	require.NoError(t, err)
	assert.Equal(t, "0x08", out.String())
}

func TestApplyValue_Integer(t *testing.T) {
	key := mustParseKey(t, "ff,03")

	out, err := ApplyValue(key, IntegerValue(big.NewInt(2)))
	require.NoError(t, err)
	assert.Equal(t, KindInteger, out.Kind())
	i, ok := out.Integer()
	require.True(t, ok)
	assert.Equal(t, int64(8), i.Int64())
}

func TestApplyValue_InvalidHex(t *testing.T) {
	var key RSAKey
	for _, s := range []string{"", "xyz", "123g", "0xxyz", "123!@#", "not-hex", "0x"} {
		_, err := ApplyValue(key, HexValue(s))
		assert.ErrorIs(t, err, cryptoerr.ErrInvalidHexInput, s)
	}
}

func TestApplyValue_Negative(t *testing.T) {
	key := mustParseKey(t, "ff,03")

	_, err := ApplyValue(key, IntegerValue(big.NewInt(-5)))
	assert.ErrorIs(t, err, cryptoerr.ErrNegativeValueUnsupported)

	v, err := ValueOf(-42)
	require.NoError(t, err)
	_, err = ApplyValue(key, v)
	assert.ErrorIs(t, err, cryptoerr.ErrNegativeValueUnsupported)
}

func TestApplyValue_Uninitialized(t *testing.T) {
	var key RSAKey
	for _, v := range []Value{HexValue("0x02"), IntegerValue(big.NewInt(2)), IntegerValue(big.NewInt(0))} {
		_, err := ApplyValue(key, v)
		assert.ErrorIs(t, err, cryptoerr.ErrUninitializedKey, v.String())
	}
}

func TestApplyValue_EmptyValue(t *testing.T) {
	key := mustParseKey(t, "ff,03")
	_, err := ApplyValue(key, Value{})
	assert.ErrorIs(t, err, cryptoerr.ErrUnsupportedValueType)
}

func TestApplyValue_PairRoundTrip(t *testing.T) {
	pair, err := CreateKeyPair(512)
	require.NoError(t, err)

	secret := new(big.Int).Lsh(big.NewInt(1), 100)
	enc, err := ApplyValue(pair.Public, IntegerValue(secret))
	require.NoError(t, err)
	assert.False(t, enc.Equal(IntegerValue(secret)))
	dec, err := ApplyValue(pair.Private, enc)
	require.NoError(t, err)
	assert.True(t, dec.Equal(IntegerValue(secret)))

	enc, err = ApplyValue(pair.Public, HexValue("0x1a2b3c"))
	require.NoError(t, err)
	dec, err = ApplyValue(pair.Private, enc)
	require.NoError(t, err)
	assert.Equal(t, "0x1a2b3c", dec.String())
}

func TestApplyValue_PairRoundTripKeepsHexDigits(t *testing.T) {
	pair, err := CreateKeyPair(256)
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"0x539", "0x539"},
		{"0x8", "0x08"},
		{"0x1a2b3c", "0x1a2b3c"},
		{"0x0", "0x00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			enc, err := ApplyValue(pair.Public, HexValue(tt.in))
			require.NoError(t, err)
			dec, err := ApplyValue(pair.Private, enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dec.String())
		})
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		kind    ValueKind
		wantErr error
	}{
		{"string", "0x10", KindHex, nil},
		{"big int", big.NewInt(7), KindInteger, nil},
		{"int", 1337, KindInteger, nil},
		{"negative int", -5, KindInteger, nil},
		{"uint64", uint64(1) << 63, KindInteger, nil},
		{"json integer", json.Number("123456789012345678901234567890"), KindInteger, nil},
		{"json float", json.Number("1.5"), 0, cryptoerr.ErrUnsupportedValueType},
		{"float", 1.5, 0, cryptoerr.ErrUnsupportedValueType},
		{"bool", true, 0, cryptoerr.ErrUnsupportedValueType},
		{"nil", nil, 0, cryptoerr.ErrUnsupportedValueType},
		{"nil big int", (*big.Int)(nil), 0, cryptoerr.ErrUnsupportedValueType},
		{"slice", []byte{1}, 0, cryptoerr.ErrUnsupportedValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestValue_CopiesInput(t *testing.T) {
	i := big.NewInt(5)
	v := IntegerValue(i)
	i.SetInt64(9)

	out, ok := v.Integer()
	require.True(t, ok)
	assert.Equal(t, int64(5), out.Int64())

	out.SetInt64(11)
	assert.Equal(t, "5", v.String())
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, "0x1f", HexValue("0x1f").Interface())
	assert.Nil(t, Value{}.Interface())

	v := IntegerValue(big.NewInt(42))
	raw, ok := v.Interface().(*big.Int)
	require.True(t, ok)
	assert.Equal(t, int64(42), raw.Int64())

	raw.SetInt64(7)
	assert.Equal(t, "42", v.String())
}

func TestEncodeUnsigned(t *testing.T) {
	buf, err := EncodeUnsigned(big.NewInt(0xff))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x00}, buf, "extra zero byte keeps the top bit clear")

	buf, err = EncodeUnsigned(big.NewInt(0x0539))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x39, 0x05, 0x00}, buf)

	buf, err = EncodeUnsigned(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, buf)

	_, err = EncodeUnsigned(big.NewInt(-1))
	assert.ErrorIs(t, err, cryptoerr.ErrNegativeValueUnsupported)
}

func TestUnsignedRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(128),
		new(big.Int).Lsh(big.NewInt(1), 100),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
	}
	for _, v := range values {
		x, err := IntegerToBigInteger(v)
		require.NoError(t, err)
		assert.Equal(t, v.Text(16), x.Hex())

		back, err := BigIntegerToInteger(x)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(back), v.String())

		buf, err := EncodeUnsigned(v)
		require.NoError(t, err)
		assert.Equal(t, 0, DecodeUnsigned(buf).Cmp(v))
	}
}

func TestBigIntegerToHex(t *testing.T) {
	assert.Equal(t, "0x00", BigIntegerToHex(bigint.Zero()))
	assert.Equal(t, "0x08", BigIntegerToHex(bigint.New(8)))
	assert.Equal(t, "0x539", BigIntegerToHex(bigint.New(1337)))
	assert.Equal(t, "0xff", BigIntegerToHex(bigint.New(0xff)))
	assert.Equal(t, "0x100", BigIntegerToHex(bigint.New(0x100)))
	assert.Equal(t, "0x1a2b3c", BigIntegerToHex(bigint.New(0x1a2b3c)))
}
