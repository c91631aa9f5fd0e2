//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) Generate(ctx context.Context, keySize int) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// MockKeyMetadataService is a mock implementation of KeyMetadataService
type MockKeyMetadataService struct {
	mock.Mock
}

func (m *MockKeyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockKeyApplyService is a mock implementation of KeyApplyService
type MockKeyApplyService struct {
	mock.Mock
}

func (m *MockKeyApplyService) Apply(ctx context.Context, keyID string, value rsakey.Value) (rsakey.Value, error) {
	args := m.Called(ctx, keyID, value)
	return args.Get(0).(rsakey.Value), args.Error(1)
}
