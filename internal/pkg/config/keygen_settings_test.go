//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyGenSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *KeyGenSettings
		expectedError bool
	}{
		{"default key size", &KeyGenSettings{DefaultKeySize: DefaultKeySize}, false},
		{"smallest key size", &KeyGenSettings{DefaultKeySize: 16, PrimeRounds: 40, MaxRetries: 8}, false},
		{"missing key size", &KeyGenSettings{}, true},
		{"key size not a power of two", &KeyGenSettings{DefaultKeySize: 3072}, true},
		{"key size too large", &KeyGenSettings{DefaultKeySize: 32768}, true},
		{"negative prime rounds", &KeyGenSettings{DefaultKeySize: 1024, PrimeRounds: -1}, true},
		{"too many prime rounds", &KeyGenSettings{DefaultKeySize: 1024, PrimeRounds: 129}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
