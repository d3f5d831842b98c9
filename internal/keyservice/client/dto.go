package client

import (
	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
)

// keyRequest is the JSON body for both key service endpoints.
// Exactly one of Secret/LongSecret is set; KeyID is empty on create.
type keyRequest struct {
	Secret     string `json:"secret,omitempty"`
	LongSecret string `json:"longsecret,omitempty"`
	KeyID      string `json:"keyid,omitempty"`
}

// keyResponse is the JSON body of a successful key service answer.
// Legacy server deployments omit longsecret.
type keyResponse struct {
	Key        string  `json:"key"`
	KeyID      string  `json:"keyid"`
	LongSecret *string `json:"longsecret"`
}

// toDomain maps the wire response to a KeyModel.
// Reports false when required fields are missing, which callers surface as a
// decode failure.
func (r keyResponse) toDomain() (*keyserviceDomain.KeyModel, bool) {
	if r.Key == "" || r.KeyID == "" {
		return nil, false
	}
	return &keyserviceDomain.KeyModel{
		KeyID:      r.KeyID,
		Key:        r.Key,
		LongSecret: r.LongSecret,
	}, true
}

// errorResponse is the JSON body the key service attaches to error answers.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
