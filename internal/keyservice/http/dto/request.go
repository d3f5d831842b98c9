// Package dto provides data transfer objects for the stub key service HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/lockbox/internal/validation"
)

// CreateKeyRequest contains the parameters for creating a new key.
type CreateKeyRequest struct {
	Secret string `json:"secret"`
}

// Validate checks if the create key request is valid.
func (r *CreateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Secret,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// GetKeyRequest contains the parameters for fetching an existing key.
// Exactly one of Secret/LongSecret must be set.
type GetKeyRequest struct {
	KeyID      string `json:"keyid"`
	Secret     string `json:"secret"`
	LongSecret string `json:"longsecret"`
}

// Validate checks if the get key request is valid.
func (r *GetKeyRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.KeyID,
			validation.Required,
			customValidation.NotBlank,
		),
	); err != nil {
		return err
	}

	if (r.Secret == "") == (r.LongSecret == "") {
		return validation.NewError(
			"validation_credentials",
			"exactly one of secret or longsecret must be provided",
		)
	}

	return nil
}
