package securestorage

import (
	"sync"

	apperrors "github.com/allisson/lockbox/internal/errors"
)

// InMemoryStorage is a SecureStorage implementation backed by process memory.
//
// It exists for tests and local development: the biometric challenge is
// simulated through AuthenticateFunc, which runs on every read of a
// biometric-protected item (never on existence checks). Safe for concurrent
// use.
type InMemoryStorage struct {
	mu        sync.RWMutex
	items     map[string][]byte
	protected map[string][]byte

	// AuthenticateFunc simulates the biometric challenge. A nil func always
	// succeeds; a returned error surfaces as ErrAuthenticationFailed.
	AuthenticateFunc func() error
}

// NewInMemoryStorage creates an empty in-memory secure store.
func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		items:     make(map[string][]byte),
		protected: make(map[string][]byte),
	}
}

// Store persists data under itemID.
func (s *InMemoryStorage) Store(itemID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[itemID] = append([]byte(nil), data...)
	return nil
}

// StoreBiometricProtected persists data under itemID in the protected space.
func (s *InMemoryStorage) StoreBiometricProtected(itemID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.protected[itemID] = append([]byte(nil), data...)
	return nil
}

// Get loads the data stored under itemID.
func (s *InMemoryStorage) Get(itemID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.items[itemID]
	if !ok {
		return nil, apperrors.Wrapf(ErrFailedToLoadData, "no item for id %q", itemID)
	}
	return append([]byte(nil), data...), nil
}

// GetBiometricProtected loads protected data after the simulated challenge.
func (s *InMemoryStorage) GetBiometricProtected(itemID string) ([]byte, error) {
	if s.AuthenticateFunc != nil {
		if err := s.AuthenticateFunc(); err != nil {
			return nil, apperrors.Wrap(ErrAuthenticationFailed, err.Error())
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.protected[itemID]
	if !ok {
		return nil, apperrors.Wrapf(ErrFailedToLoadData, "no protected item for id %q", itemID)
	}
	return append([]byte(nil), data...), nil
}

// HasValue reports whether an item exists under itemID.
func (s *InMemoryStorage) HasValue(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[itemID]
	return ok
}

// HasBiometricProtectedValue reports whether a protected item exists.
// Never invokes the simulated challenge.
func (s *InMemoryStorage) HasBiometricProtectedValue(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.protected[itemID]
	return ok
}

// Remove deletes the item and any protected variant. Idempotent.
func (s *InMemoryStorage) Remove(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, itemID)
	delete(s.protected, itemID)
	return nil
}
