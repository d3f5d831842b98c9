package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientMocks "github.com/allisson/lockbox/internal/keyservice/client/mocks"
	"github.com/allisson/lockbox/internal/securestorage"
	storageDomain "github.com/allisson/lockbox/internal/storage/domain"
)

func TestRunEnableBiometric(t *testing.T) {
	ctx := context.Background()
	mockClient := &clientMocks.MockClient{}
	storage, memory := newTestStorage(mockClient)

	model := testKeyModel("key-1", strPtr("ls-1"))
	mockClient.On("GetKey", ctx, "secret", "key-1").Return(model, nil)

	require.NoError(t, RunEnableBiometric(ctx, storage, testLogger, "key-1", "secret"))
	assert.True(t, memory.HasBiometricProtectedValue(storageDomain.LongSecretItemID("key-1")))
}

func TestRunEnableBiometricOffline(t *testing.T) {
	mockClient := &clientMocks.MockClient{}
	storage, memory := newTestStorage(mockClient)

	require.NoError(t, RunEnableBiometricOffline(storage, testLogger, "key-1", "ls-1"))
	assert.True(t, memory.HasBiometricProtectedValue(storageDomain.LongSecretItemID("key-1")))
	mockClient.AssertNotCalled(t, "GetKey")
}

func TestRunStoreBiometricAndGetBiometric(t *testing.T) {
	ctx := context.Background()
	mockClient := &clientMocks.MockClient{}
	storage, _ := newTestStorage(mockClient)

	model := testKeyModel("key-1", strPtr("ls-1"))
	mockClient.On("GetKeyViaLongSecret", ctx, "ls-1", "key-1").Return(model, nil)

	require.NoError(t, RunEnableBiometricOffline(storage, testLogger, "key-1", "ls-1"))

	ioTuple := IOTuple{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}}
	err := RunStoreBiometric(ctx, storage, testLogger, ioTuple, "item-1", "key-1", "payload")
	require.NoError(t, err)

	var out bytes.Buffer
	err = RunGetBiometric(ctx, storage, testLogger, IOTuple{Writer: &out}, "item-1", "key-1")
	require.NoError(t, err)
	assert.Equal(t, "payload", out.String())
}

func TestRunStoreBiometric_AuthenticationFailed(t *testing.T) {
	ctx := context.Background()
	mockClient := &clientMocks.MockClient{}
	storage, memory := newTestStorage(mockClient)

	require.NoError(t, RunEnableBiometricOffline(storage, testLogger, "key-1", "ls-1"))
	memory.AuthenticateFunc = func() error { return errors.New("user cancelled") }

	ioTuple := IOTuple{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}}
	err := RunStoreBiometric(ctx, storage, testLogger, ioTuple, "item-1", "key-1", "payload")
	require.Error(t, err)
	assert.ErrorIs(t, err, securestorage.ErrAuthenticationFailed)
	mockClient.AssertNotCalled(t, "GetKeyViaLongSecret")
}

func TestRunStoreBiometricWithNewKey(t *testing.T) {
	ctx := context.Background()
	mockClient := &clientMocks.MockClient{}
	storage, memory := newTestStorage(mockClient)

	model := testKeyModel("key-new", strPtr("ls-new"))
	mockClient.On("CreateKey", ctx, "secret").Return(model, nil)

	var out bytes.Buffer
	ioTuple := IOTuple{Reader: strings.NewReader(""), Writer: &out}
	err := RunStoreBiometricWithNewKey(ctx, storage, testLogger, ioTuple, "item-1", "secret", "payload")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "keyid: key-new")
	assert.Contains(t, out.String(), "longsecret: ls-new")
	assert.True(t, memory.HasBiometricProtectedValue(storageDomain.LongSecretItemID("key-new")))
}

func TestRunHasBiometricValueAndRemoveLongSecret(t *testing.T) {
	mockClient := &clientMocks.MockClient{}
	storage, memory := newTestStorage(mockClient)

	require.NoError(t, memory.Store("item-1", []byte("envelope")))
	require.NoError(t, RunEnableBiometricOffline(storage, testLogger, "key-1", "ls-1"))

	var out bytes.Buffer
	require.NoError(t, RunHasBiometricValue(storage, IOTuple{Writer: &out}, "item-1", "key-1"))
	assert.Equal(t, "true\n", out.String())

	require.NoError(t, RunRemoveLongSecret(storage, testLogger, "key-1"))

	out.Reset()
	require.NoError(t, RunHasBiometricValue(storage, IOTuple{Writer: &out}, "item-1", "key-1"))
	assert.Equal(t, "false\n", out.String())
}
