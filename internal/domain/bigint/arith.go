package bigint

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

var one = New(1)

// ModPow returns x^exponent mod modulus. It fails with cryptoerr.ErrDivisionByZero when
// modulus is zero and returns zero whenever x ≡ 0 (mod modulus).
//
// Odd moduli, which every generated RSA modulus is, run through saferith's Montgomery
// exponentiation; even moduli fall back to math/big.
func (x BigInteger) ModPow(exponent, modulus BigInteger) (BigInteger, error) {
	if modulus.IsZero() {
		return BigInteger{}, fmt.Errorf("modpow: %w", cryptoerr.ErrDivisionByZero)
	}
	if modulus.Equal(one) {
		return BigInteger{}, nil
	}

	m := modulus.Big()
	base := x.Big()
	if base.Cmp(m) >= 0 {
		base.Mod(base, m)
	}
	if base.Sign() == 0 {
		return BigInteger{}, nil
	}

	if !modulus.IsOdd() {
		r := new(big.Int).Exp(base, exponent.Big(), m)
		return fromWords(r.Bits()), nil
	}

	sm := saferith.ModulusFromBytes(modulus.BigEndianBytes())
	b := new(saferith.Nat).SetBytes(base.Bytes())
	e := new(saferith.Nat).SetBytes(exponent.BigEndianBytes())
	r := new(saferith.Nat).Exp(b, e, sm)
	return FromBytes(r.Bytes(), BigEndian), nil
}

// Mul returns x*y.
func (x BigInteger) Mul(y BigInteger) BigInteger {
	return fromWords(new(big.Int).Mul(x.Big(), y.Big()).Bits())
}

// Sub returns x-y. It fails with cryptoerr.ErrNegativeValueUnsupported when y > x.
func (x BigInteger) Sub(y BigInteger) (BigInteger, error) {
	if x.Cmp(y) < 0 {
		return BigInteger{}, fmt.Errorf("subtract %s from %s: %w", y.Hex(), x.Hex(), cryptoerr.ErrNegativeValueUnsupported)
	}
	return fromWords(new(big.Int).Sub(x.Big(), y.Big()).Bits()), nil
}

// Mod returns x mod m.
func (x BigInteger) Mod(m BigInteger) (BigInteger, error) {
	if m.IsZero() {
		return BigInteger{}, fmt.Errorf("mod: %w", cryptoerr.ErrDivisionByZero)
	}
	return fromWords(new(big.Int).Mod(x.Big(), m.Big()).Bits()), nil
}

// GCD returns the greatest common divisor of x and y.
func GCD(x, y BigInteger) BigInteger {
	return fromWords(new(big.Int).GCD(nil, nil, x.Big(), y.Big()).Bits())
}

// ModInverse returns d in [0, m) with x*d ≡ 1 (mod m), using the extended Euclidean
// algorithm. ok is false when no inverse exists.
func (x BigInteger) ModInverse(m BigInteger) (d BigInteger, ok bool) {
	if m.IsZero() || m.Equal(one) {
		return BigInteger{}, false
	}
	a, b := x.Big(), m.Big()
	g, s := new(big.Int), new(big.Int)
	g.GCD(s, nil, a, b)
	if g.Cmp(big.NewInt(1)) != 0 {
		return BigInteger{}, false
	}
	return fromWords(s.Mod(s, b).Bits()), true
}

// ProbablyPrime runs rounds Miller-Rabin tests plus a Baillie-PSW test on x.
func (x BigInteger) ProbablyPrime(rounds int) bool {
	return x.Big().ProbablyPrime(rounds)
}
