package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Burns17/book-pass-on/internal/adapter/postgres"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/location"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/registry"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/school"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/textbook"
	"github.com/Burns17/book-pass-on/internal/adapter/postgres/user"
	"github.com/Burns17/book-pass-on/internal/app"
	"github.com/Burns17/book-pass-on/internal/app/seeder"
	"github.com/Burns17/book-pass-on/internal/auth"
	"github.com/Burns17/book-pass-on/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bookpass",
		Short:        "Peer-to-peer textbook exchange backend",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newTokenCmd(),
		newVersionCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	open := func(cmd *cobra.Command) (*postgres.Migrator, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return postgres.NewMigrator(cmd.Context(), cfg.Database.DSN)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(cmd)
				if err != nil {
					return err
				}
				defer m.Close()

				n, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(cmd)
				if err != nil {
					return err
				}
				defer m.Close()
				return m.Down(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and their state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(cmd)
				if err != nil {
					return err
				}
				defer m.Close()

				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, st := range statuses {
					applied := "-"
					if !st.AppliedAt.IsZero() {
						applied = st.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(out, "%-8s %-24s %s\n", st.State, applied, st.Source.Path)
				}
				return nil
			},
		},
	)
	return cmd
}

func newSeedCmd() *cobra.Command {
	var (
		phases     string
		dryRun     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo school with students, locations and textbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appCfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(appCfg.Log)

			seedCfg, err := seeder.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if dryRun {
				seedCfg.DryRun = true
			}

			pool, err := postgres.NewPool(cmd.Context(), appCfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			pipeline := seeder.NewPipeline(logger, seeder.Repos{
				Schools:   school.New(pool),
				Registry:  registry.New(pool),
				Profiles:  user.New(pool),
				Locations: location.New(pool),
				Textbooks: textbook.New(pool),
			}, *seedCfg)

			if err := pipeline.Run(cmd.Context(), splitPhases(phases)); err != nil {
				logger.Error("pipeline failed", slog.String("error", err.Error()))
				return err
			}
			if pipeline.HasErrors() {
				return fmt.Errorf("seed completed with errors")
			}
			logger.Info("pipeline completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&phases, "phase", "", "comma-separated phases to run (default: all)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse seed data without writing to DB")
	cmd.Flags().StringVar(&configPath, "seeder-config", "", "path to seeder YAML config file")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed access token for a user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "profile id to put in the token subject")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func splitPhases(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
