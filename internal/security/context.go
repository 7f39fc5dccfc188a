// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package security provides credential validation, salted password hashing,
// and HMAC-signed token handling for Inkpost.
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/samber/oops"
)

// TokenSeparator splits the plain value from its signature in a signed token.
const TokenSeparator = "|"

// Context holds the process-wide signing secret. It is constructed once at
// startup and is immutable afterwards; rotating the secret invalidates every
// outstanding token.
type Context struct {
	secret []byte
}

// NewContext creates a Context from the given secret.
func NewContext(secret string) (*Context, error) {
	if secret == "" {
		return nil, oops.Code("SECURITY_EMPTY_SECRET").Errorf("signing secret cannot be empty")
	}
	return &Context{secret: []byte(secret)}, nil
}

// Sign returns the value concatenated with the hex HMAC-SHA256 digest of
// itself: "<value>|<hexdigest>". The result is tamper-evident but not
// encrypted; never sign anything the client must not see.
func (c *Context) Sign(value string) string {
	return value + TokenSeparator + c.digest(value)
}

// Verify recovers the original value from a signed token. It splits on the
// first separator, re-signs the value, and accepts only an exact match
// against the full token. Returns ("", false) for anything else.
func (c *Context) Verify(token string) (string, bool) {
	value, _, found := strings.Cut(token, TokenSeparator)
	if !found {
		return "", false
	}
	if token != c.Sign(value) {
		return "", false
	}
	return value, true
}

func (c *Context) digest(value string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
