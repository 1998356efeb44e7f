package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashPassword returns the stored representation of a password: a single
// SHA-512 digest, hex-encoded and upper-cased. The scheme is unsalted and
// unstretched; it is kept only for compatibility with already-stored
// hashes. Do not reuse it for new credential types (see DESIGN.md).
func HashPassword(password string) string {
	sum := sha512.Sum512([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// VerifyPassword reports whether the submitted password matches the stored
// upper-hex hash. Empty inputs never match.
func VerifyPassword(submitted, storedHash string) bool {
	if submitted == "" || storedHash == "" {
		return false
	}
	computed := HashPassword(submitted)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
