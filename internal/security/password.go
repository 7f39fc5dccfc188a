// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package security

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"
	"strings"
)

// Stored password hashes have the form "<hexdigest>,<salt>" where the digest
// is sha256(username + password + salt).
const (
	saltLength    = 5
	hashSeparator = ","
)

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// makeSalt generates a five-character alphabetic salt. Salts only need to be
// unique-ish, not unpredictable, so math/rand is sufficient here.
func makeSalt() string {
	var b strings.Builder
	b.Grow(saltLength)
	for range saltLength {
		b.WriteByte(saltAlphabet[rand.IntN(len(saltAlphabet))])
	}
	return b.String()
}

// HashPassword hashes a password with a freshly generated salt, returning the
// storable "<hexdigest>,<salt>" form.
func HashPassword(username, password string) string {
	return hashPasswordWithSalt(username, password, makeSalt())
}

func hashPasswordWithSalt(username, password, salt string) string {
	sum := sha256.Sum256([]byte(username + password + salt))
	return hex.EncodeToString(sum[:]) + hashSeparator + salt
}

// VerifyPassword checks a username/password pair against a stored hash. The
// salt is recovered from the stored value and the digest recomputed; anything
// short of an exact match fails, including malformed stored values.
func VerifyPassword(username, password, stored string) bool {
	_, salt, found := strings.Cut(stored, hashSeparator)
	if !found {
		return false
	}
	return stored == hashPasswordWithSalt(username, password, salt)
}
