package keys

import (
	"context"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
)

// KeyGenerationService creates key pairs and stores both halves.
type KeyGenerationService interface {
	// Generate creates a key pair with a modulus of keySize bits.
	// It returns the public and private KeyMeta, in that order, sharing one KeyPairID.
	Generate(ctx context.Context, keySize int) ([]*KeyMeta, error)
}

// KeyMetadataService defines methods for listing, reading and deleting stored keys.
type KeyMetadataService interface {
	// List retrieves stored keys considering a query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves a stored key by its unique ID.
	// It returns an error matching ErrKeyNotFound when the ID is unknown.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DeleteByID deletes a stored key by its unique ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyApplyService applies stored keys to values.
type KeyApplyService interface {
	// Apply computes value^e mod n with the stored key keyID.
	// The result has the same shape (hex text or integer) as value.
	Apply(ctx context.Context, keyID string, value rsakey.Value) (rsakey.Value, error)
}

// KeyRepository defines the persistence operations of the key ring
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}
