//go:build unit || integration
// +build unit integration

package app

import (
	"testing"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-keyring/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds the key ring services and their dependencies for testing
type TestServices struct {
	KeyGenerationService keys.KeyGenerationService
	KeyMetadataService   keys.KeyMetadataService
	KeyApplyService      keys.KeyApplyService

	RSAProcessor cryptoalg.RSAKeyProcessor
	DBContext    *persistence.TestContext
}

// SetupTestServices wires the key ring services against a fresh test database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	rsaProcessor, err := cryptography.NewRSAKeyProcessor(logger, 0, 0)
	require.NoError(t, err, "Failed to create RSA processor")

	generation, err := NewKeyGenerationService(dbContext.KeyRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create key generation service")

	metadata, err := NewKeyMetadataService(dbContext.KeyRepo, logger)
	require.NoError(t, err, "Failed to create key metadata service")

	apply, err := NewKeyApplyService(dbContext.KeyRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create key apply service")

	return &TestServices{
		KeyGenerationService: generation,
		KeyMetadataService:   metadata,
		KeyApplyService:      apply,
		RSAProcessor:         rsaProcessor,
		DBContext:            dbContext,
	}
}
