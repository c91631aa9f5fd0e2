package keys

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyQuery filters, sorts and pages a key listing. Zero values disable a filter.
type KeyQuery struct {
	Type            string    `validate:"omitempty,oneof=public private"`
	KeyPairID       string    `validate:"omitempty,uuid4"`
	KeySize         int       `validate:"omitempty,min=0"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit  int `validate:"omitempty,min=0,max=1000"`
	Offset int `validate:"omitempty,min=0"`

	SortBy    string `validate:"omitempty,oneof=id key_pair_id type key_size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery returns a query listing every key.
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{}
}

// Validate for validating KeyQuery struct
func (q *KeyQuery) Validate() error {
	return formatValidationError(validator.New().Struct(q))
}
