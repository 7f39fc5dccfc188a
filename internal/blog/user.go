// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

import (
	"context"
	"time"
)

// User represents a registered account. PasswordHash is the salted digest
// produced by the security package ("<hexdigest>,<salt>"); plaintext
// passwords never reach this package.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	Created      time.Time
	LastModified time.Time
}

// UserRepository manages user persistence.
type UserRepository interface {
	// Create stores a new user and assigns its ID. Returns ErrUsernameTaken
	// if the username is already registered.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername retrieves a user by exact username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Exists reports whether a username is already registered.
	Exists(ctx context.Context, username string) (bool, error)
}
