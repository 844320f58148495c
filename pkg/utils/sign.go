package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "moviehub_session"

// SignToken returns "<token>.<signature>" where the signature is a hex-encoded
// HMAC-SHA256 of the token under the session secret. The signed form is what
// goes into the session cookie.
func SignToken(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignedToken splits a signed cookie value and checks its signature.
// A tampered or malformed value yields ok=false.
func VerifySignedToken(value, secret string) (string, bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", false
	}

	return token, true
}
