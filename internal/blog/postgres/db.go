// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package postgres implements the blog repositories on PostgreSQL.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB abstracts the query surface the repositories need. Both *pgxpool.Pool
// and pgxmock satisfy it, so unit tests run without a database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
