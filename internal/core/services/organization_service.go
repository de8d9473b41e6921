package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service with the provided dependencies
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &organizationService{
		organizationRepo: organizationRepo,
	}
}

// Ensure organizationService implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// FindOrganizationByID retrieves an organization by its ID
func (s *organizationService) FindOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization by ID",
				slog.String("organization_id", organizationID))
		}
		return nil, err
	}
	return organization, nil
}

// ListUserOrganizations retrieves all organizations a user belongs to
func (s *organizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	organizations, err := s.organizationRepo.ListOrganizationsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if organizations == nil {
		return []domain.Organization{}, nil
	}

	s.LogDebug(ctx, "Organizations listed successfully",
		slog.Int("count", len(organizations)),
		slog.String("user_id", userID))
	return organizations, nil
}

// ListMembers retrieves the memberships of an organization
func (s *organizationService) ListMembers(ctx context.Context, organizationID, requestingUserID string) ([]domain.OrganizationMember, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.organizationRepo.ListMembers(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organization members",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if members == nil {
		return []domain.OrganizationMember{}, nil
	}
	return members, nil
}

// CreateOrganization creates a new organization
func (s *organizationService) CreateOrganization(ctx context.Context, name, description, creatorUserID string) (*domain.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("organization name is required")
	}

	now := time.Now()
	organization := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           name,
		Description:    description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.organizationRepo.SaveOrganization(ctx, organization); err != nil {
		s.LogError(ctx, err, "Failed to save organization",
			slog.String("organization_id", organization.OrganizationID))
		return nil, err
	}

	// The creator becomes the first admin.
	if err := s.AddMember(ctx, creatorUserID, creatorUserID, organization.OrganizationID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin to new organization",
			slog.String("organization_id", organization.OrganizationID),
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization created successfully",
		slog.String("organization_id", organization.OrganizationID),
		slog.String("creator_id", creatorUserID))
	return &organization, nil
}

// AddMember adds a user to an organization with a specific role
func (s *organizationService) AddMember(ctx context.Context, addingUserID, targetUserID, organizationID string, role domain.MemberRole) error {
	// Self-assignment is how the creator becomes admin of a new organization.
	if addingUserID != targetUserID {
		if err := s.AuthorizeUserAction(ctx, addingUserID, organizationID, domain.RoleAdmin); err != nil {
			s.LogError(ctx, err, "User not authorized to add members to organization",
				slog.String("adding_user_id", addingUserID),
				slog.String("organization_id", organizationID))
			return err
		}
	}

	switch role {
	case domain.RoleAdmin, domain.RoleMember, domain.RoleReadOnly, domain.RoleRemoved:
	default:
		return apperrors.NewValidationFailedError("unknown role " + string(role))
	}

	membership := domain.OrganizationMember{
		UserID:         targetUserID,
		OrganizationID: organizationID,
		Role:           role,
		JoinedAt:       time.Now(),
	}

	if err := s.organizationRepo.AddMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to organization",
			slog.String("target_user_id", targetUserID),
			slog.String("organization_id", organizationID))
		return err
	}

	s.LogInfo(ctx, "User added to organization successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("organization_id", organizationID),
		slog.String("role", string(role)))
	return nil
}

// AuthorizeUserAction checks if a user has required permissions for an organization
func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error {
	membership, err := s.organizationRepo.FindMemberRole(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of organization",
				slog.String("user_id", userID),
				slog.String("organization_id", organizationID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user organization role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

var roleRank = map[domain.MemberRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// hasRequiredRole checks if the user's role meets or exceeds the required role.
// REMOVED and unknown roles never qualify.
func hasRequiredRole(userRole, requiredRole domain.MemberRole) bool {
	have, ok := roleRank[userRole]
	if !ok {
		return false
	}
	need, ok := roleRank[requiredRole]
	if !ok {
		return false
	}
	return have >= need
}
