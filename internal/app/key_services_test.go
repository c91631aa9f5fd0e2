//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/config"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKeySize = 512

func TestKeyGenerationService_Generate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.Generate(ctx, testKeySize)
	require.NoError(t, err)
	require.Len(t, keyMetas, 2)

	public, private := keyMetas[0], keyMetas[1]
	assert.Equal(t, keys.KeyTypePublic, public.Type)
	assert.Equal(t, keys.KeyTypePrivate, private.Type)
	assert.Equal(t, public.KeyPairID, private.KeyPairID)
	assert.NotEqual(t, public.ID, private.ID)

	publicKey, err := public.Key()
	require.NoError(t, err)
	privateKey, err := private.Key()
	require.NoError(t, err)
	assert.Equal(t, testKeySize, publicKey.Bits())
	assert.True(t, publicKey.Modulus().Equal(privateKey.Modulus()))
	assert.Equal(t, "10001", publicKey.Exponent().Hex())

	stored, err := services.KeyMetadataService.List(ctx, &keys.KeyQuery{KeyPairID: public.KeyPairID})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestKeyGenerationService_InvalidKeySize(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.KeyGenerationService.Generate(context.Background(), 1000)
	assert.ErrorIs(t, err, cryptoerr.ErrInvalidKeySize)

	stored, err := services.KeyMetadataService.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestKeyGenerationService_CancelledContext(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := services.KeyGenerationService.Generate(ctx, 64)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeyGenerationService_RollbackOnStoreFailure(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	services := SetupTestServices(t, config.SqliteDbType)

	repo := &mockKeyRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *keys.KeyMeta) bool { return k.Type == keys.KeyTypePublic })).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *keys.KeyMeta) bool { return k.Type == keys.KeyTypePrivate })).Return(errors.New("disk full"))
	repo.On("DeleteByID", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	generation, err := NewKeyGenerationService(repo, services.RSAProcessor, logger)
	require.NoError(t, err)

	_, err = generation.Generate(context.Background(), 64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	repo.AssertNumberOfCalls(t, "Create", 2)
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}

func TestKeyMetadataService(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.Generate(ctx, 64)
	require.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		fetched, err := services.KeyMetadataService.GetByID(ctx, keyMetas[0].ID)
		require.NoError(t, err)
		assert.Equal(t, keyMetas[0].Material, fetched.Material)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		_, err := services.KeyMetadataService.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, keys.ErrKeyNotFound)
	})

	t.Run("List by type", func(t *testing.T) {
		list, err := services.KeyMetadataService.List(ctx, &keys.KeyQuery{Type: keys.KeyTypePrivate})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, keyMetas[1].ID, list[0].ID)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		require.NoError(t, services.KeyMetadataService.DeleteByID(ctx, keyMetas[0].ID))

		err := services.KeyMetadataService.DeleteByID(ctx, keyMetas[0].ID)
		assert.ErrorIs(t, err, keys.ErrKeyNotFound)
	})
}

func TestKeyApplyService(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.Generate(ctx, testKeySize)
	require.NoError(t, err)
	publicID, privateID := keyMetas[0].ID, keyMetas[1].ID

	t.Run("integer round trip", func(t *testing.T) {
		secret := rsakey.IntegerValue(big.NewInt(1337))

		encrypted, err := services.KeyApplyService.Apply(ctx, publicID, secret)
		require.NoError(t, err)
		assert.Equal(t, rsakey.KindInteger, encrypted.Kind())

		decrypted, err := services.KeyApplyService.Apply(ctx, privateID, encrypted)
		require.NoError(t, err)
		assert.True(t, secret.Equal(decrypted))
	})

	t.Run("hex round trip", func(t *testing.T) {
		secret := rsakey.HexValue("0x1a2b3c")

		encrypted, err := services.KeyApplyService.Apply(ctx, privateID, secret)
		require.NoError(t, err)
		assert.Equal(t, rsakey.KindHex, encrypted.Kind())

		decrypted, err := services.KeyApplyService.Apply(ctx, publicID, encrypted)
		require.NoError(t, err)
		assert.Equal(t, "0x1a2b3c", decrypted.String())
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := services.KeyApplyService.Apply(ctx, publicID, rsakey.HexValue("0xzz"))
		assert.ErrorIs(t, err, cryptoerr.ErrInvalidHexInput)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := services.KeyApplyService.Apply(ctx, uuid.NewString(), rsakey.HexValue("0x02"))
		assert.ErrorIs(t, err, keys.ErrKeyNotFound)
	})
}

func TestNewServices_MissingDependencies(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewKeyGenerationService(nil, nil, logger)
	assert.Error(t, err)

	_, err = NewKeyMetadataService(nil, logger)
	assert.Error(t, err)

	_, err = NewKeyApplyService(nil, nil, nil)
	assert.Error(t, err)
}

type mockKeyRepository struct {
	mock.Mock
}

func (m *mockKeyRepository) Create(ctx context.Context, key *keys.KeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*keys.KeyMeta), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if v := args.Get(0); v != nil {
		return v.(*keys.KeyMeta), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
