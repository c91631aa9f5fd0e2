//go:build unit || integration
// +build unit integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/config"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestKeySize16   = 16
	TestKeySize1024 = 1024
	TestKeySize2048 = 2048

	TestMaterial = "c5a1,10001"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB opens a migrated test database that is closed and dropped on cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	logger := testutil.SetupTestLogger(t)

	keyRepo, err := NewGormKeyRepository(db, logger)
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates a public test key of a fresh pair
func CreateTestKey(t *testing.T) *keys.KeyMeta {
	t.Helper()
	return CreateTestKeyWithOptions(t, uuid.NewString(), keys.KeyTypePublic, TestKeySize16)
}

// CreateTestKeyWithOptions creates a test key with custom options
func CreateTestKeyWithOptions(t *testing.T, keyPairID, keyType string, keySize int) *keys.KeyMeta {
	t.Helper()

	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Type:            keyType,
		KeySize:         keySize,
		Material:        TestMaterial,
		DateTimeCreated: time.Now().UTC(),
	}
}
