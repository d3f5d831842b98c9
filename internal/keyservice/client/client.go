// Package client implements the HTTP client for the remote key service.
//
// Every operation is a single JSON POST against one of two endpoints rooted
// at <realmBaseUrl>/keyservice/<version>/. Transport-level failures are
// retried on a fresh transport session up to the configured retry count;
// HTTP-level answers are definitive and never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"

	apperrors "github.com/allisson/lockbox/internal/errors"
)

const (
	// APIVersionV1 is the only key service API version currently deployed.
	APIVersionV1 = "v1"

	endpointCreateKey = "createkey"
	endpointKey       = "key"
)

// Client defines the interface for key service operations.
type Client interface {
	// CreateKey creates a new key protected by secret.
	CreateKey(ctx context.Context, secret string) (*keyserviceDomain.KeyModel, error)

	// GetKey retrieves the key identified by keyID using the user secret.
	GetKey(ctx context.Context, secret, keyID string) (*keyserviceDomain.KeyModel, error)

	// GetKeyViaLongSecret retrieves the key identified by keyID using a
	// previously issued long secret.
	GetKeyViaLongSecret(ctx context.Context, longSecret, keyID string) (*keyserviceDomain.KeyModel, error)
}

// httpClient implements Client over net/http.
// The transport session is owned by the client and reused across calls;
// independent calls against it are safe to run concurrently.
type httpClient struct {
	baseURL    *url.URL
	version    string
	retryCount int
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a key service client for the given realm.
//
// The realm base URL is validated here: a URL that does not parse, or lacks a
// scheme or host, is a programmer error and fails construction. retryCount is
// the number of additional attempts after a pure transport failure (0 retries
// means exactly one attempt).
func New(realmBaseURL, version string, retryCount int, logger *slog.Logger) (Client, error) {
	parsed, err := url.Parse(realmBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid realm base URL %q", realmBaseURL)
	}
	if retryCount < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "retry count must be non-negative")
	}

	return &httpClient{
		baseURL:    parsed,
		version:    version,
		retryCount: retryCount,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// CreateKey creates a new key protected by secret.
func (c *httpClient) CreateKey(ctx context.Context, secret string) (*keyserviceDomain.KeyModel, error) {
	return c.post(ctx, endpointCreateKey, keyRequest{Secret: secret})
}

// GetKey retrieves the key identified by keyID using the user secret.
func (c *httpClient) GetKey(ctx context.Context, secret, keyID string) (*keyserviceDomain.KeyModel, error) {
	return c.post(ctx, endpointKey, keyRequest{Secret: secret, KeyID: keyID})
}

// GetKeyViaLongSecret retrieves the key identified by keyID using a long secret.
func (c *httpClient) GetKeyViaLongSecret(
	ctx context.Context,
	longSecret, keyID string,
) (*keyserviceDomain.KeyModel, error) {
	return c.post(ctx, endpointKey, keyRequest{LongSecret: longSecret, KeyID: keyID})
}

// post issues the request, applying the transport-failure retry budget.
// Each retry re-issues the request after discarding idle connections so the
// attempt runs on a fresh transport session.
func (c *httpClient) post(
	ctx context.Context,
	endpoint string,
	body keyRequest,
) (*keyserviceDomain.KeyModel, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode key service request")
	}

	endpointURL := c.baseURL.JoinPath("keyservice", c.version, endpoint).String()

	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			c.httpClient.CloseIdleConnections()
			c.logger.Debug("retrying key service request",
				slog.String("endpoint", endpoint),
				slog.Int("attempt", attempt+1),
			)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(payload))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to build key service request")
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// No HTTP response at all: the only condition the retry budget covers.
			lastErr = err
			continue
		}

		return c.decodeResponse(resp)
	}

	return nil, mapTransportError(lastErr)
}

// decodeResponse turns an HTTP answer into a key model or a typed error.
func (c *httpClient) decodeResponse(resp *http.Response) (*keyserviceDomain.KeyModel, error) {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		var kr keyResponse
		if err := json.NewDecoder(resp.Body).Decode(&kr); err != nil {
			return nil, keyserviceDomain.ErrUnableToDecode
		}
		model, ok := kr.toDomain()
		if !ok {
			return nil, keyserviceDomain.ErrUnableToDecode
		}
		return model, nil
	}

	return nil, MapStatusCode(resp.StatusCode, readErrorMessage(resp.Body))
}

// readErrorMessage extracts the server message from an error body, if any.
// The message is preserved for diagnostics only and never branched on.
func readErrorMessage(body io.Reader) *string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return nil
	}

	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.Message != "" {
		return &er.Message
	}

	return nil
}
