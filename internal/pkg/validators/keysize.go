package validators

import (
	"fmt"
	"math/bits"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// RSAKeySizeTag is the struct tag checked by RSAKeySizeValidation
const RSAKeySizeTag = "rsa_keysize"

// Bounds of an accepted RSA modulus size in bits.
const (
	MinRSAKeySize = 16
	MaxRSAKeySize = 16384
)

// IsRSAKeySize reports whether keySize is a power of two in [MinRSAKeySize, MaxRSAKeySize].
func IsRSAKeySize(keySize uint64) bool {
	return keySize >= MinRSAKeySize && keySize <= MaxRSAKeySize && bits.OnesCount64(keySize) == 1
}

// RSAKeySizeValidation validates an integer field holding an RSA key size.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		return n > 0 && IsRSAKeySize(uint64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IsRSAKeySize(field.Uint())
	default:
		return false
	}
}

// RegisterValidations registers the custom tags of this package on validate.
func RegisterValidations(validate *validator.Validate) error {
	if err := validate.RegisterValidation(RSAKeySizeTag, RSAKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", RSAKeySizeTag, err)
	}
	return nil
}

// New returns a validator with the custom tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := RegisterValidations(validate); err != nil {
		return nil, err
	}
	return validate, nil
}
