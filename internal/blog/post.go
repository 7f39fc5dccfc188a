// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

import (
	"context"
	"time"
)

// FrontPagePostLimit caps the main listing at the most recent posts.
const FrontPagePostLimit = 10

// Post is a blog entry owned by its author.
type Post struct {
	ID           int64
	Subject      string
	Content      string
	AuthorID     int64
	Created      time.Time
	LastModified time.Time
}

// PostRepository manages post persistence.
type PostRepository interface {
	// Create stores a new post and assigns its ID.
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by ID.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update overwrites subject, content, and last-modified time.
	Update(ctx context.Context, post *Post) error

	// Delete removes a post. Comments and likes referencing it are left in
	// place.
	Delete(ctx context.Context, id int64) error

	// ListRecent returns up to limit posts ordered by creation time
	// descending.
	ListRecent(ctx context.Context, limit int) ([]*Post, error)
}
