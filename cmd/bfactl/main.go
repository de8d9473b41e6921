package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	organizationID string
	actingUserID   string
	logLevel       string

	rootCmd = &cobra.Command{
		Use:   "bfactl",
		Short: "Operate budget lifecycles from the command line",
		Long: `bfactl runs the budget lifecycle operations (locking, forecast derivation,
month close) and reports directly against the database, using the same
configuration as the API server (PGSQL_URL, AMQP_URL, ...).`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&organizationID, "org", "", "organization ID")
	rootCmd.PersistentFlags().StringVar(&actingUserID, "user", "", "user ID the operation is performed as")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(lockCmd(true))
	rootCmd.AddCommand(lockCmd(false))
	rootCmd.AddCommand(forecastCmd())
	rootCmd.AddCommand(closeMonthCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(totalsCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
