package cryptography

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/prime"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/logger"
)

// rsaKeyProcessor struct that implements the RSAKeyProcessor interface
type rsaKeyProcessor struct {
	generator *rsakey.KeyPairGenerator
	logger    logger.Logger
}

// NewRSAKeyProcessor creates and returns a new instance of rsaKeyProcessor.
// primeRounds and maxRetries of zero keep the package defaults.
func NewRSAKeyProcessor(logger logger.Logger, primeRounds int, maxRetries uint64) (cryptoalg.RSAKeyProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	opts := []rsakey.KeyPairOption{}
	if maxRetries > 0 {
		opts = append(opts, rsakey.WithMaxRetries(maxRetries))
	}
	primes := prime.NewGenerator(prime.CryptoSource(), prime.WithRounds(primeRounds))

	return &rsaKeyProcessor{
		generator: rsakey.NewKeyPairGenerator(primes, opts...),
		logger:    logger,
	}, nil
}

// CreateKeyPair derives a key pair with a modulus of exactly keySize bits.
func (r *rsaKeyProcessor) CreateKeyPair(keySize int) (*rsakey.KeyPair, error) {
	pair, err := r.generator.CreateKeyPair(keySize)
	if err != nil {
		r.logger.Error("RSA key pair generation failed: ", err)
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	r.logger.Info(fmt.Sprintf("Generated %d-bit RSA key pair", keySize))
	return &pair, nil
}

// ParseKey parses the "hexmodulus,hexexponent" text form of a key.
func (r *rsaKeyProcessor) ParseKey(text string) (rsakey.RSAKey, error) {
	key, err := rsakey.ParseKey(text)
	if err != nil {
		return rsakey.RSAKey{}, fmt.Errorf("failed to parse RSA key: %w", err)
	}
	return key, nil
}

// Apply computes value^exponent mod modulus in the shape of value.
func (r *rsaKeyProcessor) Apply(key rsakey.RSAKey, value rsakey.Value) (rsakey.Value, error) {
	result, err := rsakey.ApplyValue(key, value)
	if err != nil {
		return rsakey.Value{}, fmt.Errorf("failed to apply RSA key: %w", err)
	}

	r.logger.Info(fmt.Sprintf("Applied %d-bit RSA key to %s value", key.Bits(), value.Kind()))
	return result, nil
}

// SaveKeyToFile writes the compact text form of the key to a file.
func (r *rsaKeyProcessor) SaveKeyToFile(key rsakey.RSAKey, filename string) error {
	if !key.IsInitialized() {
		return fmt.Errorf("refusing to save uninitialized key")
	}

	if err := os.WriteFile(filepath.Clean(filename), []byte(key.String()+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	r.logger.Info("Saved RSA key ", filename)
	return nil
}

// ReadKey reads a key written by SaveKeyToFile.
func (r *rsaKeyProcessor) ReadKey(keyPath string) (rsakey.RSAKey, error) {
	content, err := os.ReadFile(filepath.Clean(keyPath))
	if err != nil {
		return rsakey.RSAKey{}, fmt.Errorf("unable to read key file: %w", err)
	}

	key, err := rsakey.ParseKey(strings.TrimSpace(string(content)))
	if err != nil {
		return rsakey.RSAKey{}, fmt.Errorf("unable to parse key file %s: %w", keyPath, err)
	}

	return key, nil
}
