// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrAccessDenied is returned when a user attempts to mutate an entity they
// do not own. Externally it is indistinguishable from ErrNotFound.
var ErrAccessDenied = errors.New("access denied")

// ErrUsernameTaken is returned when creating a user whose username is
// already registered.
var ErrUsernameTaken = errors.New("username taken")
