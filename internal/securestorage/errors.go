package securestorage

import (
	"github.com/allisson/lockbox/internal/errors"
)

// Secure storage error definitions.
//
// Implementations attach the platform's raw status description as wrapped
// detail for diagnostics; callers must treat that detail as opaque and
// branch only on the sentinels.
var (
	// ErrFailedToStoreData indicates the secure store rejected a write.
	ErrFailedToStoreData = errors.Wrap(errors.ErrInternal, "failed to store data")

	// ErrFailedToLoadData indicates a read failed, including the item not
	// existing at all.
	ErrFailedToLoadData = errors.Wrap(errors.ErrNotFound, "failed to load data")

	// ErrAuthenticationFailed indicates the biometric challenge was
	// cancelled, failed or locked out. It surfaces identically regardless of
	// which operation triggered the challenge so UI layers can render one
	// consistent retry affordance.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed for data")
)
