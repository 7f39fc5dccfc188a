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

// PostRepository implements blog.PostRepository using PostgreSQL.
type PostRepository struct {
	db DB
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create stores a new post.
func (r *PostRepository) Create(ctx context.Context, post *blog.Post) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (subject, content, author_id, created_at, last_modified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		post.Subject,
		post.Content,
		post.AuthorID,
		post.Created,
		post.LastModified,
	).Scan(&post.ID)
	if err != nil {
		return oops.Code("POST_CREATE_FAILED").
			With("operation", "insert post").
			With("author_id", post.AuthorID).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a post by ID.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, subject, content, author_id, created_at, last_modified
		FROM posts
		WHERE id = $1
	`, id)

	var p blog.Post
	err := row.Scan(&p.ID, &p.Subject, &p.Content, &p.AuthorID, &p.Created, &p.LastModified)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("POST_NOT_FOUND").
			With("id", id).
			Wrap(blog.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("POST_GET_BY_ID_FAILED").
			With("id", id).
			Wrap(err)
	}
	return &p, nil
}

// Update overwrites subject, content, and last-modified time.
func (r *PostRepository) Update(ctx context.Context, post *blog.Post) error {
	result, err := r.db.Exec(ctx, `
		UPDATE posts SET subject = $2, content = $3, last_modified = $4
		WHERE id = $1
	`, post.ID, post.Subject, post.Content, post.LastModified)
	if err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("id", post.ID).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("POST_NOT_FOUND").
			With("id", post.ID).
			Wrap(blog.ErrNotFound)
	}
	return nil
}

// Delete removes a post. No cascade: comments and likes keep their rows.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return oops.Code("POST_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("POST_NOT_FOUND").
			With("id", id).
			Wrap(blog.ErrNotFound)
	}
	return nil
}

// ListRecent returns up to limit posts ordered by creation time descending.
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]*blog.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, subject, content, author_id, created_at, last_modified
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, oops.Code("POST_LIST_FAILED").
			With("limit", limit).
			Wrap(err)
	}
	defer rows.Close()

	var posts []*blog.Post
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Subject, &p.Content, &p.AuthorID, &p.Created, &p.LastModified); err != nil {
			return nil, oops.Code("POST_SCAN_FAILED").Wrap(err)
		}
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("POST_LIST_FAILED").
			With("operation", "iterate posts").
			Wrap(err)
	}
	return posts, nil
}

// Compile-time interface check.
var _ blog.PostRepository = (*PostRepository)(nil)
