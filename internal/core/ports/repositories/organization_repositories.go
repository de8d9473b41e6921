package repositories

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindOrganizationByID retrieves a specific organization by its ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizationsByUserID retrieves all organizations a user is an active member of.
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data
type OrganizationWriter interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, organization domain.Organization) error
}

// OrganizationMembershipManager defines operations for managing organization memberships
type OrganizationMembershipManager interface {
	// AddMember adds a user to an organization, replacing the role of an existing membership.
	AddMember(ctx context.Context, membership domain.OrganizationMember) error

	// FindMemberRole retrieves the membership of a user in an organization.
	FindMemberRole(ctx context.Context, userID, organizationID string) (*domain.OrganizationMember, error)

	// ListMembers retrieves all memberships of an organization.
	ListMembers(ctx context.Context, organizationID string) ([]domain.OrganizationMember, error)
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
	OrganizationMembershipManager
}
