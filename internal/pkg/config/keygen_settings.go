package config

import (
	"fmt"

	"github.com/MGTheTrain/rsa-keyring/internal/pkg/validators"
)

// DefaultKeySize is used when a request omits the key size
const DefaultKeySize = 2048

// KeyGenSettings tunes RSA key pair generation
type KeyGenSettings struct {
	DefaultKeySize int `mapstructure:"default_key_size" validate:"required,rsa_keysize"`
	// PrimeRounds is the number of Miller-Rabin rounds; zero keeps the library default.
	PrimeRounds int `mapstructure:"prime_rounds" validate:"gte=0,lte=128"`
	// MaxRetries bounds prime pair redraws; zero keeps the library default.
	MaxRetries uint64 `mapstructure:"max_retries"`
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}
	return nil
}
