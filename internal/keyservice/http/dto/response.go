package dto

import (
	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
)

// KeyResponse is the JSON body of a successful key service answer.
// LongSecret is omitted for legacy keys that never received one.
type KeyResponse struct {
	Key        string  `json:"key"`
	KeyID      string  `json:"keyid"`
	LongSecret *string `json:"longsecret,omitempty"`
}

// MapKeyModelToResponse maps a domain key model to the wire response.
func MapKeyModelToResponse(model *keyserviceDomain.KeyModel) KeyResponse {
	return KeyResponse{
		Key:        model.Key,
		KeyID:      model.KeyID,
		LongSecret: model.LongSecret,
	}
}
