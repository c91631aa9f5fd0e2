package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAKeyProcessor
	logger       logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(keyRepo keys.KeyRepository, rsaProcessor cryptoalg.RSAKeyProcessor, logger logger.Logger) (keys.KeyGenerationService, error) {
	if keyRepo == nil || rsaProcessor == nil || logger == nil {
		return nil, fmt.Errorf("key repository, RSA processor and logger are required")
	}
	return &keyGenerationService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Generate creates a key pair and stores the public and private halves under one key pair ID.
func (s *keyGenerationService) Generate(ctx context.Context, keySize int) ([]*keys.KeyMeta, error) {
	pair, err := s.rsaProcessor.CreateKeyPair(keySize)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("key generation cancelled: %w", err)
	}

	keyPairID := uuid.NewString()
	created := time.Now().UTC()
	halves := []struct {
		keyType string
		key     rsakey.RSAKey
	}{
		{keys.KeyTypePublic, pair.Public},
		{keys.KeyTypePrivate, pair.Private},
	}

	keyMetas := make([]*keys.KeyMeta, 0, len(halves))
	for _, half := range halves {
		meta := &keys.KeyMeta{
			ID:              uuid.NewString(),
			KeyPairID:       keyPairID,
			Type:            half.keyType,
			KeySize:         keySize,
			Material:        half.key.String(),
			DateTimeCreated: created,
		}

		if err := s.keyRepo.Create(ctx, meta); err != nil {
			return nil, s.rollback(ctx, keyMetas, fmt.Errorf("failed to store %s key: %w", half.keyType, err))
		}
		keyMetas = append(keyMetas, meta)
	}

	s.logger.Info(fmt.Sprintf("Generated %d-bit key pair %s", keySize, keyPairID))
	return keyMetas, nil
}

// rollback removes halves stored before a failure so no pair is left incomplete.
func (s *keyGenerationService) rollback(ctx context.Context, stored []*keys.KeyMeta, cause error) error {
	result := multierror.Append(nil, cause)
	for _, meta := range stored {
		if err := s.keyRepo.DeleteByID(ctx, meta.ID); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to roll back key %s: %w", meta.ID, err))
		}
	}
	s.logger.Warn("Rolled back incomplete key pair: ", cause)
	return result.ErrorOrNil()
}

// keyMetadataService implements the KeyMetadataService interface
type keyMetadataService struct {
	keyRepo keys.KeyRepository
	logger  logger.Logger
}

// NewKeyMetadataService creates a new keyMetadataService instance
func NewKeyMetadataService(keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyMetadataService, error) {
	if keyRepo == nil || logger == nil {
		return nil, fmt.Errorf("key repository and logger are required")
	}
	return &keyMetadataService{
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// List retrieves stored keys considering a query filter when set.
func (s *keyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keyMetas, nil
}

// GetByID retrieves a stored key by its ID.
func (s *keyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve key: %w", err)
	}
	return keyMeta, nil
}

// DeleteByID deletes a stored key by its ID.
func (s *keyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	s.logger.Info("Deleted key ", keyID)
	return nil
}

// keyApplyService implements the KeyApplyService interface
type keyApplyService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAKeyProcessor
	logger       logger.Logger
}

// NewKeyApplyService creates a new keyApplyService instance
func NewKeyApplyService(keyRepo keys.KeyRepository, rsaProcessor cryptoalg.RSAKeyProcessor, logger logger.Logger) (keys.KeyApplyService, error) {
	if keyRepo == nil || rsaProcessor == nil || logger == nil {
		return nil, fmt.Errorf("key repository, RSA processor and logger are required")
	}
	return &keyApplyService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Apply computes value^e mod n with the stored key keyID.
func (s *keyApplyService) Apply(ctx context.Context, keyID string, value rsakey.Value) (rsakey.Value, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return rsakey.Value{}, fmt.Errorf("failed to retrieve key: %w", err)
	}

	key, err := keyMeta.Key()
	if err != nil {
		return rsakey.Value{}, err
	}

	return s.rsaProcessor.Apply(key, value)
}
