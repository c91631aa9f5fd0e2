package prime

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

// DefaultRounds is the number of Miller-Rabin rounds run on each surviving candidate.
// Together with the Baillie-PSW test math/big performs, the error probability for a
// random candidate is below 4^-20.
const DefaultRounds = 20

// MinBits is the smallest prime size the generator accepts.
const MinBits = 2

// smallPrimes are the odd primes up to 53; their product fits in a uint64.
var smallPrimes = []uint8{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// Generator produces probable primes. It holds no mutable state and may be shared.
type Generator struct {
	source      RandomSource
	rounds      int
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRounds overrides DefaultRounds.
func WithRounds(rounds int) Option {
	return func(g *Generator) {
		if rounds > 0 {
			g.rounds = rounds
		}
	}
}

// WithMaxAttempts caps the number of candidates drawn per GeneratePrime call.
// Zero keeps the size-dependent default.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// NewGenerator creates a Generator drawing candidates from source.
func NewGenerator(source RandomSource, opts ...Option) *Generator {
	g := &Generator{
		source: source,
		rounds: DefaultRounds,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// attemptsFor bounds the candidate search. Odd candidates of b bits are prime with
// probability about 2/(b ln 2), so 20*b leaves a wide margin.
func (g *Generator) attemptsFor(bits int) int {
	if g.maxAttempts > 0 {
		return g.maxAttempts
	}
	if n := 20 * bits; n > 1000 {
		return n
	}
	return 1000
}

// GeneratePrime returns a probable prime with exactly bits significant bits. The second
// highest bit is also set so that the product of two such primes has exactly 2*bits bits.
func (g *Generator) GeneratePrime(bits int) (bigint.BigInteger, error) {
	if bits < MinBits {
		return bigint.BigInteger{}, fmt.Errorf("prime size %d below minimum %d: %w", bits, MinBits, cryptoerr.ErrInvalidKeySize)
	}

	attempts := g.attemptsFor(bits)
	for i := 0; i < attempts; i++ {
		buf, err := g.source.RandomBits(bits)
		if err != nil {
			return bigint.BigInteger{}, fmt.Errorf("failed to draw prime candidate: %w", err)
		}
		shapeCandidate(buf, bits)

		candidate := bigint.FromBytes(buf, bigint.BigEndian)
		if !passesSieve(candidate) {
			continue
		}
		if candidate.ProbablyPrime(g.rounds) {
			return candidate, nil
		}
	}
	return bigint.BigInteger{}, fmt.Errorf("no %d-bit prime after %d candidates: %w", bits, attempts, cryptoerr.ErrKeyGenerationFailed)
}

// shapeCandidate sets bit bits-1, bit bits-2 and bit 0 of the big-endian buffer.
func shapeCandidate(buf []byte, bits int) {
	setBit(buf, bits-1)
	setBit(buf, bits-2)
	buf[len(buf)-1] |= 1
}

func setBit(buf []byte, i int) {
	buf[len(buf)-1-i/8] |= 1 << uint(i%8)
}

// passesSieve rejects candidates divisible by a small odd prime, except the small primes themselves.
func passesSieve(candidate bigint.BigInteger) bool {
	c := candidate.Big()
	if c.BitLen() <= 6 {
		return true
	}
	r := new(big.Int).Mod(c, smallPrimesProduct).Uint64()
	for _, p := range smallPrimes {
		if r%uint64(p) == 0 {
			return false
		}
	}
	return true
}
