package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongSecretItemID(t *testing.T) {
	assert.Equal(t, "lockbox.longsecret.k1", LongSecretItemID("k1"))
	assert.Equal(t, "lockbox.longsecret.", LongSecretItemID(""))
	assert.NotEqual(t, LongSecretItemID("a"), LongSecretItemID("b"))
}
