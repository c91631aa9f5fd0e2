package cryptoalg

import "github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"

// RSAKeyProcessor handles textbook RSA key operations.
// Apply is the raw modular exponentiation; no padding or hashing takes place.
type RSAKeyProcessor interface {
	// CreateKeyPair derives a key pair with a modulus of exactly keySize bits.
	// keySize must be a power of two between 16 and 16384.
	CreateKeyPair(keySize int) (*rsakey.KeyPair, error)

	// ParseKey parses the "hexmodulus,hexexponent" text form of a key.
	ParseKey(text string) (rsakey.RSAKey, error)

	// Apply computes value^exponent mod modulus and answers in the shape of value
	// (hex string in, hex string out; integer in, integer out).
	Apply(key rsakey.RSAKey, value rsakey.Value) (rsakey.Value, error)

	// SaveKeyToFile writes the compact text form of the key to a file.
	SaveKeyToFile(key rsakey.RSAKey, filename string) error

	// ReadKey reads a key written by SaveKeyToFile.
	ReadKey(keyPath string) (rsakey.RSAKey, error)
}
