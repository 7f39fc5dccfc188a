// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package main

import (
	"context"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/inkpost/inkpost/internal/blog"
	blogpostgres "github.com/inkpost/inkpost/internal/blog/postgres"
	"github.com/inkpost/inkpost/internal/security"
	"github.com/inkpost/inkpost/internal/store"
)

// Default timeout for seed command.
const defaultSeedTimeout = 30 * time.Second

// Demo account created by seed.
const (
	seedUsername = "demo"
	seedPassword = "demopass"
)

// seedConfig holds configuration for the seed command.
type seedConfig struct {
	timeout time.Duration
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the blog with demo data",
		Long: `Runs migrations and creates a demo account with a first post.
This command is idempotent - it will not create duplicates if run multiple times.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args, cfg)
		},
	}

	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string, cfg *seedConfig) error {
	appCfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	if appCfg.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database.url is required (config file or DATABASE_URL)")
	}

	// Use cmd.Context() to respect SIGINT/SIGTERM signals
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()

	cmd.Println("Running migrations...")
	migrator, err := store.NewMigrator(appCfg.Database.URL)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close() //nolint:errcheck // migration error takes precedence
		return err
	}
	if err := migrator.Close(); err != nil {
		return err
	}

	cmd.Println("Connecting to database...")
	pool, err := store.Connect(ctx, appCfg.Database.URL)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer pool.Close()

	service, err := blog.NewService(
		blogpostgres.NewUserRepository(pool),
		blogpostgres.NewPostRepository(pool),
		blogpostgres.NewCommentRepository(pool),
		blogpostgres.NewLikeRepository(pool),
	)
	if err != nil {
		return oops.Code("SERVICE_INIT_FAILED").Wrap(err)
	}

	exists, err := service.UserExists(ctx, seedUsername)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "check demo user").Wrap(err)
	}
	if exists {
		cmd.Println("Demo data already present, nothing to do")
		return nil
	}

	hash := security.HashPassword(seedUsername, seedPassword)
	userID, err := service.CreateUser(ctx, seedUsername, hash, "")
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "create demo user").Wrap(err)
	}

	postID, err := service.CreatePost(ctx, "Welcome to Inkpost",
		"This post was created by the seed command. Log in as 'demo' to try editing it.",
		userID)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "create demo post").Wrap(err)
	}

	cmd.Printf("Created demo user %q (id %d) with post %d\n", seedUsername, userID, postID)
	return nil
}
