// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/inkpost/internal/blog"
	"github.com/inkpost/inkpost/internal/blog/postgres"
)

func TestLikeRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mock := newMockPool(t)
	mock.ExpectQuery(`INSERT INTO likes`).
		WithArgs(int64(42), int64(2), now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := postgres.NewLikeRepository(mock)
	like := &blog.Like{PostID: 42, UserID: 2, Created: now, LastModified: now}
	require.NoError(t, repo.Create(ctx, like))
	assert.EqualValues(t, 5, like.ID)
}

func TestLikeRepository_CountForPost(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := postgres.NewLikeRepository(mock)
	count, err := repo.CountForPost(context.Background(), 42)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
