package domain

import (
	"github.com/allisson/lockbox/internal/errors"
)

// ErrUnexpectedData indicates secure storage returned bytes that do not
// decode as the expected text format. Secure storage corruption must not be
// silently swallowed.
var ErrUnexpectedData = errors.Wrap(errors.ErrInternal, "unexpected data in secure storage")
