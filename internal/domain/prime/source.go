package prime

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource produces uniformly random bits.
type RandomSource interface {
	// RandomBits returns ceil(n/8) bytes in big-endian order holding n random bits.
	// Bits above n in the first byte are zero.
	RandomBits(n int) ([]byte, error)
}

type readerSource struct {
	reader io.Reader
}

// NewReaderSource returns a RandomSource that reads from r.
func NewReaderSource(r io.Reader) RandomSource {
	return &readerSource{reader: r}
}

// CryptoSource returns a RandomSource backed by crypto/rand.
func CryptoSource() RandomSource {
	return NewReaderSource(rand.Reader)
}

func (s *readerSource) RandomBits(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("random bit count must be positive, got %d", n)
	}
	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bits: %w", err)
	}
	if excess := len(buf)*8 - n; excess > 0 {
		buf[0] &= 0xff >> uint(excess)
	}
	return buf, nil
}
