// Package mocks provides mock implementations for testing secure storage consumers.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSecureStorage is a mock implementation of securestorage.SecureStorage for testing.
type MockSecureStorage struct {
	mock.Mock
}

// Store mocks the Store method of SecureStorage.
func (m *MockSecureStorage) Store(itemID string, data []byte) error {
	args := m.Called(itemID, data)
	return args.Error(0)
}

// StoreBiometricProtected mocks the StoreBiometricProtected method of SecureStorage.
func (m *MockSecureStorage) StoreBiometricProtected(itemID string, data []byte) error {
	args := m.Called(itemID, data)
	return args.Error(0)
}

// Get mocks the Get method of SecureStorage.
func (m *MockSecureStorage) Get(itemID string) ([]byte, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// GetBiometricProtected mocks the GetBiometricProtected method of SecureStorage.
func (m *MockSecureStorage) GetBiometricProtected(itemID string) ([]byte, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// HasValue mocks the HasValue method of SecureStorage.
func (m *MockSecureStorage) HasValue(itemID string) bool {
	args := m.Called(itemID)
	return args.Bool(0)
}

// HasBiometricProtectedValue mocks the HasBiometricProtectedValue method of SecureStorage.
func (m *MockSecureStorage) HasBiometricProtectedValue(itemID string) bool {
	args := m.Called(itemID)
	return args.Bool(0)
}

// Remove mocks the Remove method of SecureStorage.
func (m *MockSecureStorage) Remove(itemID string) error {
	args := m.Called(itemID)
	return args.Error(0)
}
