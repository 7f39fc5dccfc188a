// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package blog

import (
	"context"
	"time"
)

// Like records a user liking a post. Nothing prevents the same user from
// liking the same post repeatedly; see CreateLike on Service.
type Like struct {
	ID           int64
	PostID       int64
	UserID       int64
	Created      time.Time
	LastModified time.Time
}

// LikeRepository manages like persistence.
type LikeRepository interface {
	// Create stores a new like and assigns its ID.
	Create(ctx context.Context, like *Like) error

	// CountForPost returns the number of likes on a post.
	CountForPost(ctx context.Context, postID int64) (int64, error)
}
