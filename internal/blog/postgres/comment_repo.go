// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/inkpost/inkpost/internal/blog"
)

// CommentRepository implements blog.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create stores a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *blog.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (content, post_id, author_id, created_at, last_modified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		comment.Content,
		comment.PostID,
		comment.AuthorID,
		comment.Created,
		comment.LastModified,
	).Scan(&comment.ID)
	if err != nil {
		return oops.Code("COMMENT_CREATE_FAILED").
			With("operation", "insert comment").
			With("post_id", comment.PostID).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a comment by ID.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*blog.Comment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, content, post_id, author_id, created_at, last_modified
		FROM comments
		WHERE id = $1
	`, id)

	var c blog.Comment
	err := row.Scan(&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.Created, &c.LastModified)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("COMMENT_NOT_FOUND").
			With("id", id).
			Wrap(blog.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("COMMENT_GET_BY_ID_FAILED").
			With("id", id).
			Wrap(err)
	}
	return &c, nil
}

// Update overwrites content and last-modified time.
func (r *CommentRepository) Update(ctx context.Context, comment *blog.Comment) error {
	result, err := r.db.Exec(ctx, `
		UPDATE comments SET content = $2, last_modified = $3
		WHERE id = $1
	`, comment.ID, comment.Content, comment.LastModified)
	if err != nil {
		return oops.Code("COMMENT_UPDATE_FAILED").
			With("id", comment.ID).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("COMMENT_NOT_FOUND").
			With("id", comment.ID).
			Wrap(blog.ErrNotFound)
	}
	return nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return oops.Code("COMMENT_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("COMMENT_NOT_FOUND").
			With("id", id).
			Wrap(blog.ErrNotFound)
	}
	return nil
}

// ListForPost returns a post's comments, oldest first.
func (r *CommentRepository) ListForPost(ctx context.Context, postID int64) ([]*blog.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, content, post_id, author_id, created_at, last_modified
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC
	`, postID)
	if err != nil {
		return nil, oops.Code("COMMENT_LIST_FAILED").
			With("post_id", postID).
			Wrap(err)
	}
	defer rows.Close()

	var comments []*blog.Comment
	for rows.Next() {
		var c blog.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.Created, &c.LastModified); err != nil {
			return nil, oops.Code("COMMENT_SCAN_FAILED").Wrap(err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("COMMENT_LIST_FAILED").
			With("operation", "iterate comments").
			Wrap(err)
	}
	return comments, nil
}

// Compile-time interface check.
var _ blog.CommentRepository = (*CommentRepository)(nil)
