package service

import (
	"crypto/rand"
	"fmt"
)

// RandomBytes returns n cryptographically secure random bytes.
//
// The platform CSPRNG is the only acceptable source for IVs and nonces; a
// failure of the primitive itself indicates platform-level compromise and is
// treated as an unrecoverable invariant violation rather than a returnable
// error.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("secure random source failed: %v", err))
	}
	return b
}
