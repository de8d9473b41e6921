package services

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
)

// OrganizationReaderSvc defines read operations for organization data
type OrganizationReaderSvc interface {
	// FindOrganizationByID retrieves an organization the requesting user belongs to.
	FindOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error)

	// ListUserOrganizations retrieves the organizations a user is an active member of.
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error)

	// ListMembers retrieves all memberships of an organization. Any member may list them.
	ListMembers(ctx context.Context, organizationID, requestingUserID string) ([]domain.OrganizationMember, error)
}

// OrganizationWriterSvc defines write operations for organization data
type OrganizationWriterSvc interface {
	// CreateOrganization persists a new organization and makes the creator its admin.
	CreateOrganization(ctx context.Context, name, description, creatorUserID string) (*domain.Organization, error)
}

// OrganizationMembershipSvc defines operations for managing organization membership
type OrganizationMembershipSvc interface {
	// AddMember adds a user with a role, or changes the role of an existing member.
	// Only organization admins can add members.
	AddMember(ctx context.Context, addingUserID, targetUserID, organizationID string, role domain.MemberRole) error
}

// OrganizationAuthorizerSvc defines operations for organization authorization
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user holds requiredRole, or a higher one, in an organization.
	AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
	OrganizationMembershipSvc
	OrganizationAuthorizerSvc
}
