package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	OrganizationAuthorizer portssvc.OrganizationAuthorizerSvc
	WorkingSet             portssvc.WorkingSetSvc
	Events                 portssvc.EventPublisher
}

// Option is a functional option for the dependencies shared through BaseService
type Option func(*BaseService)

// WithOrganizationAuthorizer sets the authorizer used by AuthorizeUser.
func WithOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) Option {
	return func(s *BaseService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// WithWorkingSet sets the working set service that mutating operations invalidate.
func WithWorkingSet(ws portssvc.WorkingSetSvc) Option {
	return func(s *BaseService) {
		s.WorkingSet = ws
	}
}

// WithEventPublisher sets the publisher for lifecycle events.
func WithEventPublisher(p portssvc.EventPublisher) Option {
	return func(s *BaseService) {
		s.Events = p
	}
}

func (s *BaseService) apply(options []Option) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for an organization
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error {
	if s.OrganizationAuthorizer != nil {
		return s.OrganizationAuthorizer.AuthorizeUserAction(ctx, userID, organizationID, requiredRole)
	}
	s.LogDebug(ctx, "No organization authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("organization_id", organizationID),
		slog.String("required_role", string(requiredRole)))
	return nil
}

// InvalidateWorkingSet drops cached working sets of the organization after a write.
func (s *BaseService) InvalidateWorkingSet(organizationID string) {
	if s.WorkingSet != nil {
		s.WorkingSet.Invalidate(organizationID)
	}
}

// AnnounceChange drops cached working sets of the organization after a write and publishes
// the change, so other processes holding a cache drop theirs too.
func (s *BaseService) AnnounceChange(ctx context.Context, eventType domain.EventType, organizationID string, year int, userID string) {
	s.InvalidateWorkingSet(organizationID)
	s.PublishEvent(ctx, domain.BudgetEvent{
		Type:           eventType,
		OrganizationID: organizationID,
		Year:           year,
		UserID:         userID,
		Timestamp:      time.Now().UTC(),
	})
}

// PublishEvent hands event to the publisher. Failures are logged and never returned;
// the transition has already been persisted.
func (s *BaseService) PublishEvent(ctx context.Context, event domain.BudgetEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish budget event",
			slog.String("event_type", string(event.Type)),
			slog.String("organization_id", event.OrganizationID),
			slog.Int("year", event.Year))
	}
}

const (
	minYear = 1900
	maxYear = 9999
)

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return apperrors.NewValidationFailedError(fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	}
	return nil
}

func validateMonth(month domain.Month) error {
	if !month.Valid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("month must be between 1 and %d", domain.MonthsPerYear))
	}
	return nil
}

func validateKind(kind domain.AmountKind) error {
	if !kind.Valid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown amount kind %q", kind))
	}
	return nil
}

func requireOrganization(organizationID string) error {
	if organizationID == "" {
		return apperrors.NewValidationFailedError("organization id is required")
	}
	return nil
}
