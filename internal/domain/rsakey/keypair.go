package rsakey

import (
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/prime"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/validators"
)

const (
	// MinKeySize is the smallest accepted modulus size in bits.
	MinKeySize = validators.MinRSAKeySize
	// MaxKeySize is the largest accepted modulus size in bits.
	MaxKeySize = validators.MaxRSAKeySize
	// PublicExponent is the fixed public exponent. Prime pairs whose totient shares a
	// factor with it are discarded and redrawn.
	PublicExponent = 65537
	// DefaultMaxRetries bounds how often a rejected prime pair is redrawn.
	DefaultMaxRetries = 64
)

var errCandidateRejected = errors.New("prime pair rejected")

// KeyPair is the result of one derivation. The two keys share nothing after construction.
type KeyPair struct {
	Public  RSAKey
	Private RSAKey
}

// ValidateKeySize accepts powers of two between MinKeySize and MaxKeySize inclusive.
func ValidateKeySize(keySize int) error {
	if keySize <= 0 || !validators.IsRSAKeySize(uint64(keySize)) {
		return fmt.Errorf("key size %d must be a power of two between %d and %d: %w", keySize, MinKeySize, MaxKeySize, cryptoerr.ErrInvalidKeySize)
	}
	return nil
}

// KeyPairGenerator derives RSA key pairs from freshly generated primes.
type KeyPairGenerator struct {
	primes     *prime.Generator
	maxRetries uint64
}

// KeyPairOption configures a KeyPairGenerator.
type KeyPairOption func(*KeyPairGenerator)

// WithMaxRetries overrides DefaultMaxRetries.
func WithMaxRetries(n uint64) KeyPairOption {
	return func(g *KeyPairGenerator) {
		g.maxRetries = n
	}
}

// NewKeyPairGenerator creates a generator on top of primes. A nil primes uses a
// crypto/rand backed prime.Generator.
func NewKeyPairGenerator(primes *prime.Generator, opts ...KeyPairOption) *KeyPairGenerator {
	if primes == nil {
		primes = prime.NewGenerator(prime.CryptoSource())
	}
	g := &KeyPairGenerator{
		primes:     primes,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateKeyPair derives a key pair with a keySize-bit modulus using crypto/rand.
func CreateKeyPair(keySize int) (KeyPair, error) {
	return NewKeyPairGenerator(nil).CreateKeyPair(keySize)
}

// CreateKeyPair draws two distinct keySize/2-bit primes p and q with a keySize-bit product,
// then returns Public = (n, 65537) and Private = (n, 65537^-1 mod (p-1)(q-1)).
func (g *KeyPairGenerator) CreateKeyPair(keySize int) (KeyPair, error) {
	if err := ValidateKeySize(keySize); err != nil {
		return KeyPair{}, err
	}

	e := bigint.New(PublicExponent)
	var pair KeyPair

	operation := func() error {
		p, err := g.primes.GeneratePrime(keySize / 2)
		if err != nil {
			return backoff.Permanent(err)
		}
		q, err := g.primes.GeneratePrime(keySize / 2)
		if err != nil {
			return backoff.Permanent(err)
		}
		if p.Equal(q) {
			return fmt.Errorf("identical primes: %w", errCandidateRejected)
		}

		n := p.Mul(q)
		if n.BitLen() != keySize {
			return fmt.Errorf("modulus has %d bits: %w", n.BitLen(), errCandidateRejected)
		}

		phi, err := totient(p, q)
		if err != nil {
			return backoff.Permanent(err)
		}
		d, ok := e.ModInverse(phi)
		if !ok {
			return fmt.Errorf("public exponent not coprime to totient: %w", errCandidateRejected)
		}

		pair = KeyPair{
			Public:  NewRSAKey(n, e),
			Private: NewRSAKey(n, d),
		}
		return nil
	}

	policy := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, g.maxRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, errCandidateRejected) {
			return KeyPair{}, fmt.Errorf("create %d-bit key pair after %d retries: %v: %w", keySize, g.maxRetries, err, cryptoerr.ErrKeyGenerationFailed)
		}
		return KeyPair{}, fmt.Errorf("create %d-bit key pair: %w", keySize, err)
	}
	return pair, nil
}

// totient returns (p-1)(q-1).
func totient(p, q bigint.BigInteger) (bigint.BigInteger, error) {
	one := bigint.New(1)
	p1, err := p.Sub(one)
	if err != nil {
		return bigint.BigInteger{}, err
	}
	q1, err := q.Sub(one)
	if err != nil {
		return bigint.BigInteger{}, err
	}
	return p1.Mul(q1), nil
}
