// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package security

import "regexp"

// Username validation constraints.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)
	passwordRegex = regexp.MustCompile(`^.{3,20}$`)
	// Deliberately loose: "something@something.something". Full RFC 5322
	// validation buys nothing for a field we never deliver mail to.
	emailRegex = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

// ValidUsername reports whether s is 3-20 characters of letters, digits,
// underscores, and hyphens.
func ValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// ValidPassword reports whether s is 3-20 characters of anything.
func ValidPassword(s string) bool {
	return passwordRegex.MatchString(s)
}

// ValidEmail reports whether s is empty (the field is optional) or shaped
// like an email address.
func ValidEmail(s string) bool {
	return s == "" || emailRegex.MatchString(s)
}
