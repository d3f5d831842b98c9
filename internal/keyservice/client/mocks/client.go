// Package mocks provides mock implementations for testing key service consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
)

// MockClient is a mock implementation of client.Client for testing.
type MockClient struct {
	mock.Mock
}

// CreateKey mocks the CreateKey method of Client.
func (m *MockClient) CreateKey(ctx context.Context, secret string) (*keyserviceDomain.KeyModel, error) {
	args := m.Called(ctx, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keyserviceDomain.KeyModel), args.Error(1)
}

// GetKey mocks the GetKey method of Client.
func (m *MockClient) GetKey(ctx context.Context, secret, keyID string) (*keyserviceDomain.KeyModel, error) {
	args := m.Called(ctx, secret, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keyserviceDomain.KeyModel), args.Error(1)
}

// GetKeyViaLongSecret mocks the GetKeyViaLongSecret method of Client.
func (m *MockClient) GetKeyViaLongSecret(
	ctx context.Context,
	longSecret, keyID string,
) (*keyserviceDomain.KeyModel, error) {
	args := m.Called(ctx, longSecret, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keyserviceDomain.KeyModel), args.Error(1)
}
