package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
)

// versionService implements the VersionSvc interface
type versionService struct {
	BaseService
	versionRepo portsrepo.VersionRepositoryFacade
	now         func() time.Time
}

// NewVersionService creates a new version service with the provided options
func NewVersionService(versionRepo portsrepo.VersionRepositoryFacade, options ...Option) portssvc.VersionSvc {
	svc := &versionService{
		versionRepo: versionRepo,
		now:         time.Now,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.VersionSvc = (*versionService)(nil)

// GetVersions returns the budget and forecast state of a year
func (s *versionService) GetVersions(ctx context.Context, organizationID string, year int, userID string) (*domain.VersionStatus, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	versions, err := s.versionRepo.ListVersions(ctx, organizationID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list versions",
			slog.String("organization_id", organizationID),
			slog.Int("year", year))
		return nil, err
	}

	status := &domain.VersionStatus{
		OrganizationID: organizationID,
		Year:           year,
		Budget: domain.Version{
			OrganizationID: organizationID,
			Year:           year,
			VersionType:    domain.VersionBudget,
		},
	}
	for i := range versions {
		switch versions[i].VersionType {
		case domain.VersionBudget:
			status.Budget = versions[i]
		case domain.VersionForecast:
			status.Forecast = &versions[i]
		}
	}
	return status, nil
}

// LockVersion locks or unlocks the budget of a year
func (s *versionService) LockVersion(ctx context.Context, organizationID string, year int, isLocked bool, userID string) (*domain.Version, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to change budget lock",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	now := s.now()
	version := domain.Version{
		OrganizationID: organizationID,
		Year:           year,
		VersionType:    domain.VersionBudget,
		IsLocked:       isLocked,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if isLocked {
		version.LockedAt = &now
		version.LockedBy = &userID
	}

	stored, err := s.versionRepo.UpsertBudgetLock(ctx, version)
	if err != nil {
		s.LogError(ctx, err, "Failed to store budget lock",
			slog.String("organization_id", organizationID),
			slog.Int("year", year),
			slog.Bool("is_locked", isLocked))
		return nil, err
	}
	s.InvalidateWorkingSet(organizationID)

	eventType := domain.EventBudgetUnlocked
	if isLocked {
		eventType = domain.EventBudgetLocked
	}
	s.PublishEvent(ctx, domain.BudgetEvent{
		Type:           eventType,
		OrganizationID: organizationID,
		Year:           year,
		UserID:         userID,
		Timestamp:      now,
	})

	s.LogInfo(ctx, "Budget lock changed",
		slog.String("organization_id", organizationID),
		slog.Int("year", year),
		slog.Bool("is_locked", isLocked))
	return stored, nil
}

// CreateForecastFromBudget derives the forecast of a year from its budget
func (s *versionService) CreateForecastFromBudget(ctx context.Context, organizationID string, year int, overwrite bool, userID string) (*domain.Version, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to derive forecast",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	forecast, err := s.versionRepo.DeriveForecast(ctx, organizationID, year, overwrite, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("forecast for %d already exists; pass overwrite to re-derive it", year))
		}
		s.LogError(ctx, err, "Failed to derive forecast",
			slog.String("organization_id", organizationID),
			slog.Int("year", year))
		return nil, err
	}
	s.InvalidateWorkingSet(organizationID)

	s.PublishEvent(ctx, domain.BudgetEvent{
		Type:           domain.EventForecastDerived,
		OrganizationID: organizationID,
		Year:           year,
		UserID:         userID,
		Timestamp:      s.now(),
	})

	s.LogInfo(ctx, "Forecast derived from budget",
		slog.String("organization_id", organizationID),
		slog.Int("year", year),
		slog.Bool("overwrite", overwrite))
	return forecast, nil
}
