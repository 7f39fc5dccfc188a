// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package web

import (
	"strings"

	"github.com/inkpost/inkpost/internal/security"
)

// Validation messages shown next to form fields.
const (
	msgInvalidUsername  = "That's not a valid username."
	msgInvalidPassword  = "That wasn't a valid password."
	msgPasswordMismatch = "Your passwords didn't match."
	msgInvalidEmail     = "That's not a valid email."
	msgUsernameTaken    = "That user already exists."
	msgInvalidLogin     = "Invalid login"
	msgMissingPostBody  = "subject and content, please!"
	msgMissingComment   = "some content, please!"
)

// ValidationResult collects per-field validation errors keyed by form field
// name. An empty map means the input is acceptable.
type ValidationResult struct {
	Errors map[string]string
}

// Valid reports whether no field failed validation.
func (v ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

func (v *ValidationResult) addError(field, msg string) {
	if v.Errors == nil {
		v.Errors = make(map[string]string)
	}
	v.Errors[field] = msg
}

// ValidateSignup checks the signup form. Every failing field gets its own
// message so the form can re-render with all problems at once.
func ValidateSignup(username, password, verify, email string) ValidationResult {
	var result ValidationResult
	if !security.ValidUsername(username) {
		result.addError("username", msgInvalidUsername)
	}
	if !security.ValidPassword(password) {
		result.addError("password", msgInvalidPassword)
	} else if password != verify {
		result.addError("verify", msgPasswordMismatch)
	}
	if !security.ValidEmail(email) {
		result.addError("email", msgInvalidEmail)
	}
	return result
}

// ValidatePostForm checks that a post has both a subject and content.
func ValidatePostForm(subject, content string) ValidationResult {
	var result ValidationResult
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		result.addError("content", msgMissingPostBody)
	}
	return result
}

// ValidateCommentForm checks that a comment has content.
func ValidateCommentForm(content string) ValidationResult {
	var result ValidationResult
	if strings.TrimSpace(content) == "" {
		result.addError("content", msgMissingComment)
	}
	return result
}
