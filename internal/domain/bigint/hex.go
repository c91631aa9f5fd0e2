package bigint

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

const hexDigits = "0123456789abcdef"

// StripHexPrefix removes a single leading "0x" or "0X".
func StripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ParseHex parses hexadecimal text with an optional "0x" / "0X" prefix. Digits are
// case-insensitive. Empty input (after the prefix) and any non-hex character fail
// with cryptoerr.ErrInvalidFormat.
func ParseHex(text string) (BigInteger, error) {
	s := StripHexPrefix(text)
	if s == "" {
		return BigInteger{}, fmt.Errorf("parse hex %q: no digits: %w", text, cryptoerr.ErrInvalidFormat)
	}

	offset := len(text) - len(s)
	words := make([]big.Word, (len(s)+wordHex-1)/wordHex)
	for i := 0; i < len(s); i++ {
		pos := len(s) - 1 - i
		d, ok := hexValue(s[pos])
		if !ok {
			return BigInteger{}, fmt.Errorf("parse hex %q: invalid digit %q at offset %d: %w", text, s[pos], offset+pos, cryptoerr.ErrInvalidFormat)
		}
		words[i/wordHex] |= big.Word(d) << (4 * uint(i%wordHex))
	}
	return fromWords(words), nil
}

// IsHex reports whether s is a non-empty run of hex digits.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			return false
		}
	}
	return true
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns x in lowercase hex without prefix or leading zeros. Zero is "0".
func (x BigInteger) Hex() string {
	return x.PaddedHex(1)
}

// PaddedHex returns x in lowercase hex, zero-extended to at least minDigits digits.
func (x BigInteger) PaddedHex(minDigits int) string {
	buf := make([]byte, len(x.words)*wordHex)
	for i, w := range x.words {
		for j := 0; j < wordHex; j++ {
			buf[len(buf)-1-(i*wordHex+j)] = hexDigits[w&0xf]
			w >>= 4
		}
	}

	start := 0
	for start < len(buf) && buf[start] == '0' {
		start++
	}
	digits := buf[start:]
	if minDigits < 1 {
		minDigits = 1
	}
	if pad := minDigits - len(digits); pad > 0 {
		out := make([]byte, pad, pad+len(digits))
		for i := range out {
			out[i] = '0'
		}
		return string(append(out, digits...))
	}
	return string(digits)
}

// MarshalText implements encoding.TextMarshaler using the canonical hex form.
func (x BigInteger) MarshalText() ([]byte, error) {
	return []byte(x.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. x is left unchanged on error.
func (x *BigInteger) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
