package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/validators"
)

// GenerateKeyRequest is the body of POST /keys. A zero KeySize selects the server default.
type GenerateKeyRequest struct {
	KeySize int `json:"key_size" validate:"omitempty,rsa_keysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("key size %d: %w", r.KeySize, cryptoerr.ErrInvalidKeySize)
	}
	return nil
}

// ApplyByIDRequest is the body of POST /keys/:id/apply.
// Value is either a hex string or a JSON integer of any size.
type ApplyByIDRequest struct {
	Value json.RawMessage `json:"value"`
}

// ApplyRequest is the body of the stateless POST /apply.
type ApplyRequest struct {
	Key   string          `json:"key" binding:"required"`
	Value json.RawMessage `json:"value"`
}

// ApplyResponse carries the result in the shape of the request value
type ApplyResponse struct {
	Value json.RawMessage `json:"value"`
}

// KeyMetaResponse represents a stored key. Material is only set for public keys.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Type            string    `json:"type"`
	KeySize         int       `json:"key_size"`
	Material        string    `json:"material,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// NewKeyMetaResponse converts a stored key into its response form
func NewKeyMetaResponse(k *keys.KeyMeta) KeyMetaResponse {
	response := KeyMetaResponse{
		ID:              k.ID,
		KeyPairID:       k.KeyPairID,
		Type:            k.Type,
		KeySize:         k.KeySize,
		DateTimeCreated: k.DateTimeCreated,
	}
	if !k.IsPrivate() {
		response.Material = k.Material
	}
	return response
}

// DecodeValue reads a JSON value as an apply input. Integers keep every digit.
func DecodeValue(raw json.RawMessage) (rsakey.Value, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return rsakey.Value{}, fmt.Errorf("missing value: %w", cryptoerr.ErrUnsupportedValueType)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		return rsakey.Value{}, fmt.Errorf("malformed value: %w", cryptoerr.ErrUnsupportedValueType)
	}

	switch v.(type) {
	case string, json.Number:
		return rsakey.ValueOf(v)
	}
	return rsakey.Value{}, fmt.Errorf("value of JSON type %T: %w", v, cryptoerr.ErrUnsupportedValueType)
}

// EncodeValue renders an apply result as a JSON string or number.
func EncodeValue(v rsakey.Value) (json.RawMessage, error) {
	switch raw := v.Interface().(type) {
	case *big.Int:
		return json.RawMessage(raw.Text(10)), nil
	case string:
		return json.Marshal(raw)
	}
	return nil, fmt.Errorf("empty value: %w", cryptoerr.ErrUnsupportedValueType)
}
