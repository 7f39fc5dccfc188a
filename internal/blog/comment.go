// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

import (
	"context"
	"time"
)

// Comment is a reply to a post, owned by its author.
type Comment struct {
	ID           int64
	Content      string
	PostID       int64
	AuthorID     int64
	Created      time.Time
	LastModified time.Time
}

// CommentRepository manages comment persistence.
type CommentRepository interface {
	// Create stores a new comment and assigns its ID.
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment by ID.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Update overwrites content and last-modified time.
	Update(ctx context.Context, comment *Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id int64) error

	// ListForPost returns a post's comments ordered by creation time
	// ascending.
	ListForPost(ctx context.Context, postID int64) ([]*Comment, error)
}
