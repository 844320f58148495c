package utils_test

import (
	"testing"

	"moviehub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignToken_RoundTrip(t *testing.T) {
	signed := utils.SignToken("some-token", "secret")

	token, ok := utils.VerifySignedToken(signed, "secret")
	require.True(t, ok)
	assert.Equal(t, "some-token", token)
}

func TestVerifySignedToken_Tampered(t *testing.T) {
	signed := utils.SignToken("some-token", "secret")

	_, ok := utils.VerifySignedToken(signed+"x", "secret")
	assert.False(t, ok)

	// Signature from one token pasted onto another
	_, ok = utils.VerifySignedToken("other-token."+signed[len("some-token."):], "secret")
	assert.False(t, ok)
}

func TestVerifySignedToken_WrongSecret(t *testing.T) {
	signed := utils.SignToken("some-token", "secret")

	_, ok := utils.VerifySignedToken(signed, "different-secret")
	assert.False(t, ok)
}

func TestVerifySignedToken_Malformed(t *testing.T) {
	for _, value := range []string{"", "no-dot", ".sig-only"} {
		_, ok := utils.VerifySignedToken(value, "secret")
		assert.False(t, ok, "value %q should not verify", value)
	}
}
