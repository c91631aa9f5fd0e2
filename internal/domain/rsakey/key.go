package rsakey

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

// FieldSeparator splits the modulus from the exponent in the key text form.
const FieldSeparator = ","

// RSAKey is one (modulus, exponent) pair. The zero value is the uninitialized key:
// it is a valid value, but Apply on it always fails with cryptoerr.ErrUninitializedKey.
type RSAKey struct {
	modulus  bigint.BigInteger
	exponent bigint.BigInteger
}

// NewRSAKey builds a key from its two components.
func NewRSAKey(modulus, exponent bigint.BigInteger) RSAKey {
	return RSAKey{modulus: modulus, exponent: exponent}
}

// ParseKey parses "hexmodulus,hexexponent". Whitespace around either field is ignored,
// so the spaced display form parses too. Exactly one separator is allowed and both fields
// must be non-empty hex numbers; anything else fails with cryptoerr.ErrInvalidFormat.
func ParseKey(text string) (RSAKey, error) {
	fields := strings.Split(text, FieldSeparator)
	if len(fields) != 2 {
		return RSAKey{}, fmt.Errorf("parse key: expected \"modulus%sexponent\", found %d field(s): %w", FieldSeparator, len(fields), cryptoerr.ErrInvalidFormat)
	}

	var result *multierror.Error
	modulus, err := parseField("modulus", fields[0])
	if err != nil {
		result = multierror.Append(result, err)
	}
	exponent, err := parseField("exponent", fields[1])
	if err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return RSAKey{}, fmt.Errorf("parse key: %w", err)
	}

	return RSAKey{modulus: modulus, exponent: exponent}, nil
}

func parseField(name, raw string) (bigint.BigInteger, error) {
	field := strings.TrimSpace(raw)
	if field == "" {
		return bigint.BigInteger{}, fmt.Errorf("%s is empty: %w", name, cryptoerr.ErrInvalidFormat)
	}
	v, err := bigint.ParseHex(field)
	if err != nil {
		return bigint.BigInteger{}, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// Set replaces both components with the ones parsed from text. k is unchanged on error.
func (k *RSAKey) Set(text string) error {
	parsed, err := ParseKey(text)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Modulus returns the modulus.
func (k RSAKey) Modulus() bigint.BigInteger {
	return k.modulus
}

// Exponent returns the exponent.
func (k RSAKey) Exponent() bigint.BigInteger {
	return k.exponent
}

// IsInitialized reports whether both modulus and exponent are non-zero.
func (k RSAKey) IsInitialized() bool {
	return !k.modulus.IsZero() && !k.exponent.IsZero()
}

// Bits returns the bit length of the modulus.
func (k RSAKey) Bits() int {
	return k.modulus.BitLen()
}

// Equal reports whether both keys hold the same modulus and exponent.
func (k RSAKey) Equal(other RSAKey) bool {
	return k.modulus.Equal(other.modulus) && k.exponent.Equal(other.exponent)
}

// Apply computes value^exponent mod modulus.
func (k RSAKey) Apply(value bigint.BigInteger) (bigint.BigInteger, error) {
	if !k.IsInitialized() {
		return bigint.BigInteger{}, fmt.Errorf("apply: %w", cryptoerr.ErrUninitializedKey)
	}
	result, err := value.ModPow(k.exponent, k.modulus)
	if err != nil {
		return bigint.BigInteger{}, fmt.Errorf("apply: %w", err)
	}
	return result, nil
}

// String returns the compact text form "hexmodulus,hexexponent".
func (k RSAKey) String() string {
	return k.modulus.Hex() + FieldSeparator + k.exponent.Hex()
}

// DisplayString returns the human readable text form "hexmodulus, hexexponent".
func (k RSAKey) DisplayString() string {
	return k.modulus.Hex() + FieldSeparator + " " + k.exponent.Hex()
}

// GoString renders the key as RSAKey("hexmodulus, hexexponent"), or RSAKey() when uninitialized.
func (k RSAKey) GoString() string {
	if k.modulus.IsZero() && k.exponent.IsZero() {
		return "RSAKey()"
	}
	return fmt.Sprintf("RSAKey(%q)", k.DisplayString())
}

// MarshalText implements encoding.TextMarshaler with the compact text form.
func (k RSAKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. k is unchanged on error.
func (k *RSAKey) UnmarshalText(text []byte) error {
	return k.Set(string(text))
}
