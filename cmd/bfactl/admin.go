package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/platform/config"
	"github.com/SscSPs/budget_forecast_app/internal/utils"
	"github.com/SscSPs/budget_forecast_app/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slog.Default()); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("Migrations up to date"))
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue an API token for a user",
		Long:  `Sign a bearer token with JWT_SECRET and JWT_ISSUER, for scripts and local testing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if expiry <= 0 {
				expiry = cfg.JWTExpiryDuration
			}
			token, err := utils.GenerateJWT(args[0], cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")
	return cmd
}
