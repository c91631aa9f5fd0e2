package bigint

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
)

// ByteOrder selects how a byte buffer maps onto the magnitude.
type ByteOrder int

const (
	// LittleEndian puts the least significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian puts the most significant byte first.
	BigEndian
)

// FromBytes interprets buf as an unsigned magnitude in the given byte order.
// The result is never negative; any high-order zero bytes are discarded.
func FromBytes(buf []byte, order ByteOrder) BigInteger {
	words := make([]big.Word, (len(buf)+wordBytes-1)/wordBytes)
	for i := range buf {
		b := buf[i]
		if order == BigEndian {
			b = buf[len(buf)-1-i]
		}
		words[i/wordBytes] |= big.Word(b) << (8 * uint(i%wordBytes))
	}
	return fromWords(words)
}

// ToBytes returns exactly length bytes holding x in little-endian order, zero-extended on
// the most significant side. It fails with cryptoerr.ErrBufferTooSmall when length cannot
// hold the magnitude.
func (x BigInteger) ToBytes(length int) ([]byte, error) {
	n := x.ByteLen()
	if length < n {
		return nil, fmt.Errorf("encode %d-byte magnitude into %d bytes: %w", n, length, cryptoerr.ErrBufferTooSmall)
	}
	out := make([]byte, length)
	for i := 0; i < n; i++ {
		out[i] = byte(x.words[i/wordBytes] >> (8 * uint(i%wordBytes)))
	}
	return out, nil
}

// BigEndianBytes returns the minimal big-endian encoding of x. Zero encodes as an empty slice.
func (x BigInteger) BigEndianBytes() []byte {
	n := x.ByteLen()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = byte(x.words[i/wordBytes] >> (8 * uint(i%wordBytes)))
	}
	return out
}
