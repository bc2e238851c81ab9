package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/taskbook-api/internal/config"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/service"
	"github.com/phrazzld/taskbook-api/internal/service/auth"
	"github.com/spf13/cobra"
)

// passwordEnvVar supplies the password for `user create` when --password is
// not given, keeping it out of shell history.
const passwordEnvVar = "TASKBOOK_USER_PASSWORD"

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "taskbook",
		Short:        "Task management API server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"path to a config file (default: ./config.yaml if present)")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newUserCmd(opts),
		newHashPasswordCmd(),
	)
	return root
}

// bootstrap loads configuration and installs the process logger.
func bootstrap(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled))
	return cfg, log, nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ds, err := openDatastore(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			if err := ds.ensureSchema(ctx); err != nil {
				_ = ds.Close()
				return err
			}

			app, err := newApplication(cfg, log, ds)
			if err != nil {
				_ = ds.Close()
				return err
			}
			return app.Run(ctx)
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|reset]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}

			ds, err := openDatastore(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() { _ = ds.Close() }()

			if err := ds.migrate(cmd.Context(), command); err != nil {
				return err
			}
			log.Info("migration command finished", slog.String("command", command))
			return nil
		},
	}
}

func newUserCmd(opts *rootOptions) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var username, name, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnvVar)
			}

			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}

			ds, err := openDatastore(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() { _ = ds.Close() }()
			if err := ds.ensureSchema(cmd.Context()); err != nil {
				return err
			}

			app, err := newApplication(cfg, log, ds)
			if err != nil {
				return err
			}

			user, err := app.userService.Register(cmd.Context(), service.RegisterUserInput{
				Username: username,
				Password: password,
				Name:     name,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %s\n", user.Username)
			return err
		},
	}
	create.Flags().StringVarP(&username, "username", "u", "", "username (required)")
	create.Flags().StringVarP(&name, "name", "n", "", "display name (required)")
	create.Flags().StringVarP(&password, "password", "p", "", "password (or set "+passwordEnvVar+")")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("name")

	userCmd.AddCommand(create)
	return userCmd
}

// newHashPasswordCmd prints bcrypt hashes for seeding users directly in SQL.
func newHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password PASSWORD...",
		Short: "Print bcrypt hashes for the given passwords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher := auth.NewBcryptHasher(cost)
			var failed []string
			for _, pw := range args {
				hash, err := hasher.Hash(pw)
				if err != nil {
					failed = append(failed, err.Error())
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
			}
			if len(failed) > 0 {
				return errors.New(strings.Join(failed, "; "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 10, "bcrypt cost factor")
	return cmd
}
