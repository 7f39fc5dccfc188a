// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inkpost/inkpost/internal/config"
	"github.com/inkpost/inkpost/internal/xdg"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Inkpost CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inkpost",
		Short: "Inkpost - a multi-user blog server",
		Long: `Inkpost is a multi-user blogging platform: signed-cookie sessions,
posts, comments, and likes, backed by PostgreSQL.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: XDG_CONFIG_HOME/inkpost/config.yaml)")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}

// loadConfig merges the config file (explicit --config or the default XDG
// path) with the given flag set.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	path := configFile
	if path == "" {
		path = filepath.Join(xdg.ConfigDir(), "config.yaml")
	}
	return config.Load(path, flags) //nolint:wrapcheck // already oops-wrapped
}
