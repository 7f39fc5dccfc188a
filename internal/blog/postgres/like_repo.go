// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package postgres

import (
	"context"

	"github.com/samber/oops"

	"github.com/inkpost/inkpost/internal/blog"
)

// LikeRepository implements blog.LikeRepository using PostgreSQL.
type LikeRepository struct {
	db DB
}

// NewLikeRepository creates a new LikeRepository.
func NewLikeRepository(db DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create stores a new like. There is no unique index on (user_id, post_id);
// repeated likes insert repeated rows.
func (r *LikeRepository) Create(ctx context.Context, like *blog.Like) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO likes (post_id, user_id, created_at, last_modified)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		like.PostID,
		like.UserID,
		like.Created,
		like.LastModified,
	).Scan(&like.ID)
	if err != nil {
		return oops.Code("LIKE_CREATE_FAILED").
			With("operation", "insert like").
			With("post_id", like.PostID).
			With("user_id", like.UserID).
			Wrap(err)
	}
	return nil
}

// CountForPost returns the number of likes on a post.
func (r *LikeRepository) CountForPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes WHERE post_id = $1
	`, postID).Scan(&count)
	if err != nil {
		return 0, oops.Code("LIKE_COUNT_FAILED").
			With("post_id", postID).
			Wrap(err)
	}
	return count, nil
}

// Compile-time interface check.
var _ blog.LikeRepository = (*LikeRepository)(nil)
