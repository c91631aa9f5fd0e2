package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Key halves of a stored pair
const (
	KeyTypePublic  = "public"
	KeyTypePrivate = "private"
)

// ErrKeyNotFound is returned when no key with the requested ID is stored.
var ErrKeyNotFound = errors.New("key not found")

// KeyMeta entity. Material holds the "hexmodulus,hexexponent" text of the key.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Type            string    `validate:"required,oneof=public private"`
	KeySize         int       `validate:"required,rsa_keysize"`
	Material        string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(k))
}

// Key parses Material into an RSAKey.
func (k *KeyMeta) Key() (rsakey.RSAKey, error) {
	key, err := rsakey.ParseKey(k.Material)
	if err != nil {
		return rsakey.RSAKey{}, fmt.Errorf("stored key %s is malformed: %w", k.ID, err)
	}
	return key, nil
}

// IsPrivate reports whether the key is the private half of its pair.
func (k *KeyMeta) IsPrivate() bool {
	return k.Type == KeyTypePrivate
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
