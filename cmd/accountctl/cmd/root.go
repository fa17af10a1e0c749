// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/crypto"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/service"
	"github.com/medineo/erp-auth/internal/store"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

// env is what a subcommand works with once the configuration is loaded and
// the store is open. close must be called when the command is done.
type env struct {
	storages *store.Storages
	services *service.Services
	logger   *logger.Logger
}

// openEnv loads the tooling configuration, opens the account store and
// builds the services on top of it. The returned command context carries
// the console logger.
func openEnv(cmd *cobra.Command, opts *rootOptions) (*env, error) {
	cfg, err := config.GetToolingConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewConsoleLogger("accountctl", cmd.ErrOrStderr())
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}

	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	storages, err := store.NewStorages(cmd.Context(), cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open account store: %w", err)
	}

	services, err := service.NewServices(storages, hasher, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	cmd.SetContext(log.WithContext(cmd.Context()))

	return &env{
		storages: storages,
		services: services,
		logger:   log,
	}, nil
}

func (e *env) close() {
	if err := e.storages.Close(); err != nil {
		e.logger.Err(err).Msg("error closing account store")
	}
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "accountctl",
		Short: "Manage accounts of the medineo-erp credential service",
		Long: `accountctl creates accounts, rotates their passwords and checks credentials
against the account store configured for the credential service.

The store and password hashing settings are read from the same environment
variables and JSON file as the server (STORAGE_DB_DATABASE_URI, APP_*).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "JSON config file path (env: CONFIG)")

	rootCmd.AddCommand(
		newCreateCmd(opts),
		newRotateCmd(opts),
		newCheckCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
