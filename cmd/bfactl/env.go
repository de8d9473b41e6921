package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	amqppub "github.com/SscSPs/budget_forecast_app/internal/adapters/messaging/amqp"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/core/services"
	"github.com/SscSPs/budget_forecast_app/internal/platform/config"
	"github.com/SscSPs/budget_forecast_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/budget_forecast_app/pkg/database"
)

// environment is what a command needs to run services against the database.
type environment struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	closers  []func()
}

func (e *environment) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// openEnvironment connects to the database and, when configured, the event broker.
// The CLI is short lived, so no working set cache is used.
func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, err
	}
	env := &environment{cfg: cfg}
	env.closers = append(env.closers, func() { database.ClosePgxPool(pool) })

	var publisher portssvc.EventPublisher = amqppub.NoopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := amqppub.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			env.Close()
			return nil, err
		}
		env.closers = append(env.closers, func() {
			if err := p.Close(); err != nil {
				slog.Warn("Failed to close event publisher", slog.String("error", err.Error()))
			}
		})
		publisher = p
	}

	env.services = services.NewServiceContainer(pgsql.NewRepositoryProvider(pool, cfg.DBQueryTimeout), nil, publisher)
	return env, nil
}

// scope returns the organization and user flags, failing when either is missing.
func scope() (string, string, error) {
	if organizationID == "" {
		return "", "", errors.New("--org is required")
	}
	if actingUserID == "" {
		return "", "", errors.New("--user is required")
	}
	return organizationID, actingUserID, nil
}

func parseYear(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", arg)
	}
	return year, nil
}

func parseMonth(arg string) (domain.Month, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || !domain.Month(n).Valid() {
		return 0, fmt.Errorf("invalid month %q: expected 1-12", arg)
	}
	return domain.Month(n), nil
}
