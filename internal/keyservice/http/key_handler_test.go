package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keyserviceService "github.com/allisson/lockbox/internal/keyservice/service"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(store *keyserviceService.StubKeyStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewKeyHandler(store, testLogger)

	router := gin.New()
	router.POST("/keyservice/v1/createkey", handler.CreateKeyHandler)
	router.POST("/keyservice/v1/key", handler.GetKeyHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestKeyHandler_CreateKey(t *testing.T) {
	store := keyserviceService.NewStubKeyStore(3, time.Minute, false)
	router := newTestRouter(store)

	t.Run("creates a key", func(t *testing.T) {
		recorder := doJSON(t, router, "/keyservice/v1/createkey", map[string]string{
			"secret": "my-secret",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body["key"])
		assert.NotEmpty(t, body["keyid"])
		assert.NotEmpty(t, body["longsecret"])
	})

	t.Run("missing secret is rejected", func(t *testing.T) {
		recorder := doJSON(t, router, "/keyservice/v1/createkey", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestKeyHandler_GetKey(t *testing.T) {
	store := keyserviceService.NewStubKeyStore(1, time.Minute, false)
	router := newTestRouter(store)

	created, err := store.CreateKey("my-secret")
	require.NoError(t, err)

	t.Run("fetch with secret", func(t *testing.T) {
		recorder := doJSON(t, router, "/keyservice/v1/key", map[string]string{
			"keyid":  created.KeyID,
			"secret": "my-secret",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, created.Key, body["key"])
	})

	t.Run("fetch with long secret", func(t *testing.T) {
		recorder := doJSON(t, router, "/keyservice/v1/key", map[string]string{
			"keyid":      created.KeyID,
			"longsecret": *created.LongSecret,
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown key id answers 404", func(t *testing.T) {
		recorder := doJSON(t, router, "/keyservice/v1/key", map[string]string{
			"keyid":  "no-such-key",
			"secret": "my-secret",
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("both credentials at once is rejected", func(t *testing.T) {
		recorder := doJSON(t, router, "/keyservice/v1/key", map[string]string{
			"keyid":      created.KeyID,
			"secret":     "my-secret",
			"longsecret": "also-this",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("wrong secret answers 401 then 403 once locked", func(t *testing.T) {
		// maxAttempts is 1: the first failure locks the key.
		recorder := doJSON(t, router, "/keyservice/v1/key", map[string]string{
			"keyid":  created.KeyID,
			"secret": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		recorder = doJSON(t, router, "/keyservice/v1/key", map[string]string{
			"keyid":  created.KeyID,
			"secret": "my-secret",
		})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
