// Package service implements the in-memory key store backing the stub key
// service. The stub exists for local development and integration testing of
// key service consumers; it keeps every key in process memory and mirrors the
// production wire contract, including secret lockout.
package service

import (
	"crypto/subtle"
	"encoding/base64"
	"sync"
	"time"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	cryptoService "github.com/allisson/lockbox/internal/crypto/service"
	apperrors "github.com/allisson/lockbox/internal/errors"
	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
)

// keyRecord holds a single stub key and its authentication state.
type keyRecord struct {
	key            string
	secretHash     string
	longSecret     string
	failedAttempts int
	lockedUntil    time.Time
}

// StubKeyStore is an in-memory key store with Argon2id-hashed secrets and
// per-key lockout. Safe for concurrent use.
type StubKeyStore struct {
	mu              sync.Mutex
	keys            map[string]*keyRecord
	hasher          *pwdhash.PasswordHasher
	maxAttempts     int
	lockoutDuration time.Duration
	legacyMode      bool
	now             func() time.Time
}

// NewStubKeyStore creates an empty stub key store. After maxAttempts failed
// secret checks a key is locked for lockoutDuration. With legacyMode enabled
// the store behaves like an old realm that issues no long secrets.
func NewStubKeyStore(maxAttempts int, lockoutDuration time.Duration, legacyMode bool) *StubKeyStore {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &StubKeyStore{
		keys:            make(map[string]*keyRecord),
		hasher:          hasher,
		maxAttempts:     maxAttempts,
		lockoutDuration: lockoutDuration,
		legacyMode:      legacyMode,
		now:             time.Now,
	}
}

// CreateKey generates a fresh 128-bit key protected by secret and returns it
// together with its id and, outside legacy mode, a newly issued long secret.
func (s *StubKeyStore) CreateKey(secret string) (*keyserviceDomain.KeyModel, error) {
	secretHash, err := s.hasher.Hash([]byte(secret))
	if err != nil {
		return nil, apperrors.Wrap(keyserviceDomain.ErrUnableToCreateKey, err.Error())
	}

	record := &keyRecord{
		key:        base64.StdEncoding.EncodeToString(cryptoService.RandomBytes(16)),
		secretHash: secretHash,
	}
	if !s.legacyMode {
		record.longSecret = uuid.Must(uuid.NewV7()).String()
	}

	keyID := uuid.Must(uuid.NewV7()).String()

	s.mu.Lock()
	s.keys[keyID] = record
	s.mu.Unlock()

	return s.toModel(keyID, record), nil
}

// GetKey returns the key identified by keyID after verifying secret.
func (s *StubKeyStore) GetKey(secret, keyID string) (*keyserviceDomain.KeyModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.keys[keyID]
	if !ok {
		return nil, keyserviceDomain.ErrKeyMissing
	}

	if s.now().Before(record.lockedUntil) {
		return nil, keyserviceDomain.ErrKeyLocked
	}

	verified, err := s.hasher.Verify([]byte(secret), record.secretHash)
	if err != nil || !verified {
		s.registerFailure(record)
		return nil, keyserviceDomain.ErrBadPassword
	}

	record.failedAttempts = 0
	return s.toModel(keyID, record), nil
}

// GetKeyViaLongSecret returns the key identified by keyID after verifying
// longSecret. Long secret failures count toward the same lockout as secret
// failures.
func (s *StubKeyStore) GetKeyViaLongSecret(longSecret, keyID string) (*keyserviceDomain.KeyModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.keys[keyID]
	if !ok {
		return nil, keyserviceDomain.ErrKeyMissing
	}

	if s.now().Before(record.lockedUntil) {
		return nil, keyserviceDomain.ErrKeyLocked
	}

	if record.longSecret == "" ||
		subtle.ConstantTimeCompare([]byte(longSecret), []byte(record.longSecret)) != 1 {
		s.registerFailure(record)
		return nil, keyserviceDomain.ErrBadPassword
	}

	record.failedAttempts = 0
	return s.toModel(keyID, record), nil
}

// registerFailure counts a failed authentication and locks the key once the
// limit is reached. Caller holds the lock.
func (s *StubKeyStore) registerFailure(record *keyRecord) {
	record.failedAttempts++
	if record.failedAttempts >= s.maxAttempts {
		record.lockedUntil = s.now().Add(s.lockoutDuration)
		record.failedAttempts = 0
	}
}

// toModel maps a record to the domain model.
func (s *StubKeyStore) toModel(keyID string, record *keyRecord) *keyserviceDomain.KeyModel {
	model := &keyserviceDomain.KeyModel{
		KeyID: keyID,
		Key:   record.key,
	}
	if record.longSecret != "" {
		longSecret := record.longSecret
		model.LongSecret = &longSecret
	}
	return model
}
