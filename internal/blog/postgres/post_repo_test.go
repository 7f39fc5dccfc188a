// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/inkpost/internal/blog"
	"github.com/inkpost/inkpost/internal/blog/postgres"
)

func TestPostRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mock := newMockPool(t)
	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("Hi", "Body", int64(1), now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	repo := postgres.NewPostRepository(mock)
	post := &blog.Post{Subject: "Hi", Content: "Body", AuthorID: 1, Created: now, LastModified: now}
	require.NoError(t, repo.Create(ctx, post))
	assert.EqualValues(t, 42, post.ID)
}

func TestPostRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("updates existing post", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE posts SET`).
			WithArgs(int64(42), "New", "Body", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewPostRepository(mock)
		err := repo.Update(ctx, &blog.Post{ID: 42, Subject: "New", Content: "Body", LastModified: now})
		require.NoError(t, err)
	})

	t.Run("zero rows affected maps to ErrNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE posts SET`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewPostRepository(mock)
		err := repo.Update(ctx, &blog.Post{ID: 404, Subject: "New", Content: "Body", LastModified: now})
		assert.ErrorIs(t, err, blog.ErrNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing post", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`DELETE FROM posts`).
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewPostRepository(mock)
		require.NoError(t, repo.Delete(ctx, 42))
	})

	t.Run("missing post maps to ErrNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`DELETE FROM posts`).
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewPostRepository(mock)
		assert.ErrorIs(t, repo.Delete(ctx, 404), blog.ErrNotFound)
	})
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT id, subject, content, author_id`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	repo := postgres.NewPostRepository(mock)
	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, blog.ErrNotFound)
}

func TestPostRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT id, subject, content, author_id`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "subject", "content", "author_id", "created_at", "last_modified"}).
			AddRow(int64(3), "third", "c", int64(1), now, now).
			AddRow(int64(2), "second", "b", int64(1), now.Add(-time.Minute), now.Add(-time.Minute)).
			AddRow(int64(1), "first", "a", int64(1), now.Add(-2*time.Minute), now.Add(-2*time.Minute)))

	repo := postgres.NewPostRepository(mock)
	posts, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Subject)
	assert.Equal(t, "first", posts[2].Subject)
}
