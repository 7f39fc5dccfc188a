// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package store provides PostgreSQL connectivity and schema management.
package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// Connection retry parameters. A cold database (fresh container, restart)
// typically answers within a few seconds; beyond maxConnectWait something is
// actually wrong.
const (
	pingBackoffBase = 250 * time.Millisecond
	maxConnectWait  = 10 * time.Second
)

// Connect opens a pgx connection pool and verifies it with a ping, retrying
// with exponential backoff while the database comes up.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").
			With("operation", "create pool").
			Wrap(err)
	}

	backoff := retry.WithMaxDuration(maxConnectWait, retry.NewExponential(pingBackoffBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if pingErr := pool.Ping(ctx); pingErr != nil {
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, oops.Code("DB_PING_FAILED").
			With("operation", "ping database").
			Wrap(err)
	}

	return pool, nil
}
