//go:build unit
// +build unit

package bigint

import (
	"math/big"
	"strings"
	"testing"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) BigInteger {
	t.Helper()
	v, err := ParseHex(s)
	require.NoError(t, err)
	return v
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"single digit", "8", "8", false},
		{"zero", "0", "0", false},
		{"leading zeros", "000000ff", "ff", false},
		{"many zeros", strings.Repeat("0", 40), "0", false},
		{"lowercase prefix", "0x1a2b3c", "1a2b3c", false},
		{"uppercase prefix", "0XDEADBEEF", "deadbeef", false},
		{"mixed case", "DeAdBeEf", "deadbeef", false},
		{"multi word", "123456789abcdef0123456789abcdef0123", "123456789abcdef0123456789abcdef0123", false},
		{"empty", "", "", true},
		{"prefix only", "0x", "", true},
		{"non hex letter", "xyz", "", true},
		{"trailing g", "123g", "", true},
		{"double prefix", "0xxyz", "", true},
		{"punctuation", "123!@#", "", true},
		{"inner space", "12 34", "", true},
		{"negative sign", "-12", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, cryptoerr.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Hex())
		})
	}
}

func TestParseHex_MatchesMathBig(t *testing.T) {
	inputs := []string{"1", "ff", "100", "ffffffffffffffff", "10000000000000000", "abcdef0123456789abcdef0123456789"}
	for _, in := range inputs {
		v := mustHex(t, in)
		expected, ok := new(big.Int).SetString(in, 16)
		require.True(t, ok)
		assert.Equal(t, 0, v.Big().Cmp(expected), in)
		assert.Equal(t, expected.BitLen(), v.BitLen(), in)
	}
}

func TestPaddedHex(t *testing.T) {
	assert.Equal(t, "08", New(8).PaddedHex(2))
	assert.Equal(t, "0539", New(1337).PaddedHex(4))
	assert.Equal(t, "539", New(1337).PaddedHex(2))
	assert.Equal(t, "00", Zero().PaddedHex(2))
	assert.Equal(t, "0", Zero().Hex())
}

func TestCanonicalForm(t *testing.T) {
	v := mustHex(t, "0000000000000000000000000000000000000001")
	assert.Len(t, v.words, 1)
	assert.True(t, v.Equal(New(1)))

	z := mustHex(t, "0x0000")
	assert.True(t, z.IsZero())
	assert.Empty(t, z.words)
	assert.True(t, z.Equal(Zero()))
	assert.Equal(t, 0, z.BitLen())
}

func TestCmp(t *testing.T) {
	a := mustHex(t, "ff")
	b := mustHex(t, "100")
	c := mustHex(t, "10000000000000000000000")

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(New(255)))
	assert.Equal(t, -1, b.Cmp(c))
	assert.Equal(t, 1, c.Cmp(Zero()))
	assert.Equal(t, -1, Zero().Cmp(New(1)))
}

func TestFromBig(t *testing.T) {
	v, err := FromBig(new(big.Int).Lsh(big.NewInt(1), 100))
	require.NoError(t, err)
	assert.Equal(t, 101, v.BitLen())
	assert.Equal(t, "1"+strings.Repeat("0", 25), v.Hex())

	_, err = FromBig(big.NewInt(-5))
	assert.ErrorIs(t, err, cryptoerr.ErrNegativeValueUnsupported)

	v, err = FromBig(nil)
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestBigReturnsCopy(t *testing.T) {
	v := mustHex(t, "1234")
	b := v.Big()
	b.SetInt64(99)
	assert.Equal(t, "1234", v.Hex())
}

func TestTextMarshaling(t *testing.T) {
	var v BigInteger
	require.NoError(t, v.UnmarshalText([]byte("0xABC")))
	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(text))

	err = v.UnmarshalText([]byte("nope"))
	assert.ErrorIs(t, err, cryptoerr.ErrInvalidFormat)
	assert.Equal(t, "abc", v.String())
}
