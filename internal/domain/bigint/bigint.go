package bigint

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

const (
	wordBits  = bits.UintSize
	wordBytes = wordBits / 8
	wordHex   = wordBits / 4
)

// BigInteger is a non-negative integer stored as little-endian machine words.
// The slice is always canonical: the most significant word is non-zero, and
// the number zero is represented by an empty slice.
type BigInteger struct {
	words []big.Word
}

// Zero returns the number zero.
func Zero() BigInteger {
	return BigInteger{}
}

// New returns the BigInteger holding v.
func New(v uint64) BigInteger {
	return fromWords(new(big.Int).SetUint64(v).Bits())
}

// FromBig copies the magnitude of b. Negative values are rejected.
func FromBig(b *big.Int) (BigInteger, error) {
	if b == nil {
		return BigInteger{}, nil
	}
	if b.Sign() < 0 {
		return BigInteger{}, fmt.Errorf("cannot convert %s: %w", b.String(), cryptoerr.ErrNegativeValueUnsupported)
	}
	return fromWords(append([]big.Word(nil), b.Bits()...)), nil
}

// Big returns a freshly allocated *big.Int with the same value.
func (x BigInteger) Big() *big.Int {
	return new(big.Int).SetBits(append([]big.Word(nil), x.words...))
}

// fromWords takes ownership of words and trims it to canonical form.
func fromWords(words []big.Word) BigInteger {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	if n == 0 {
		return BigInteger{}
	}
	return BigInteger{words: words[:n:n]}
}

// IsZero reports whether x is zero.
func (x BigInteger) IsZero() bool {
	return len(x.words) == 0
}

// IsOdd reports whether the lowest bit of x is set.
func (x BigInteger) IsOdd() bool {
	return len(x.words) > 0 && x.words[0]&1 == 1
}

// BitLen returns the number of significant bits in x. BitLen of zero is 0.
func (x BigInteger) BitLen() int {
	if len(x.words) == 0 {
		return 0
	}
	top := x.words[len(x.words)-1]
	return (len(x.words)-1)*wordBits + bits.Len(uint(top))
}

// ByteLen returns the minimum number of bytes needed to hold x.
func (x BigInteger) ByteLen() int {
	return (x.BitLen() + 7) / 8
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x BigInteger) Cmp(y BigInteger) int {
	switch {
	case len(x.words) < len(y.words):
		return -1
	case len(x.words) > len(y.words):
		return 1
	}
	for i := len(x.words) - 1; i >= 0; i-- {
		switch {
		case x.words[i] < y.words[i]:
			return -1
		case x.words[i] > y.words[i]:
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y hold the same value.
func (x BigInteger) Equal(y BigInteger) bool {
	return x.Cmp(y) == 0
}

// String returns the canonical hex form of x.
func (x BigInteger) String() string {
	return x.Hex()
}
