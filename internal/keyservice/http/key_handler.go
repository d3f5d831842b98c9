// Package http provides the HTTP handlers for the stub key service.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/lockbox/internal/httputil"
	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
	"github.com/allisson/lockbox/internal/keyservice/http/dto"
	keyserviceService "github.com/allisson/lockbox/internal/keyservice/service"
	customValidation "github.com/allisson/lockbox/internal/validation"
)

// KeyHandler handles the stub key service endpoints.
type KeyHandler struct {
	store  *keyserviceService.StubKeyStore
	logger *slog.Logger
}

// NewKeyHandler creates a key handler backed by the given store.
func NewKeyHandler(store *keyserviceService.StubKeyStore, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		store:  store,
		logger: logger,
	}
}

// CreateKeyHandler creates a new key protected by the provided secret.
// POST /keyservice/v1/createkey
// Returns 200 OK with the key material, key id and long secret.
func (h *KeyHandler) CreateKeyHandler(c *gin.Context) {
	var req dto.CreateKeyRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	model, err := h.store.CreateKey(req.Secret)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeyModelToResponse(model))
}

// GetKeyHandler fetches an existing key by id, authenticated with either the
// user secret or a previously issued long secret.
// POST /keyservice/v1/key
// Returns 200 OK with the key material; 401 on a wrong credential, 403 on a
// locked key, 404 on an unknown key id.
func (h *KeyHandler) GetKeyHandler(c *gin.Context) {
	var req dto.GetKeyRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	model, err := h.getKey(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeyModelToResponse(model))
}

// getKey dispatches to the right store lookup based on the credential kind.
func (h *KeyHandler) getKey(req dto.GetKeyRequest) (*keyserviceDomain.KeyModel, error) {
	if req.LongSecret != "" {
		return h.store.GetKeyViaLongSecret(req.LongSecret, req.KeyID)
	}
	return h.store.GetKey(req.Secret, req.KeyID)
}
