package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_forecast_app/internal/models"
	"github.com/SscSPs/budget_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(base BaseRepository) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository: base}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

const organizationSelectQuery = `
SELECT
	o.organization_id, o.name, o.description, o.is_active,
	o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
FROM organizations o
`

func (r *PgxOrganizationRepository) getOrganizations(ctx context.Context, filterQuery string, args ...any) ([]domain.Organization, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, organizationSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, storeError("failed to query organizations", err)
	}
	defer rows.Close()
	orgs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		return nil, storeError("failed to collect organization rows", err)
	}
	return mapping.ToDomainOrganizationSlice(orgs), nil
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, organization domain.Organization) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelOrganization(organization)
	query := `
		INSERT INTO organizations (
			organization_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("organization ID " + organization.OrganizationID + " already exists")
		}
		return storeError("failed to save organization "+organization.OrganizationID, err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	orgs, err := r.getOrganizations(ctx, `WHERE o.organization_id = $1`, organizationID)
	if err != nil {
		return nil, err
	}
	if len(orgs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &orgs[0], nil
}

func (r *PgxOrganizationRepository) ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	filter := `
		JOIN organization_members om ON o.organization_id = om.organization_id
		WHERE om.user_id = $1 AND om.role <> $2 AND o.is_active = true
		ORDER BY o.name;
	`
	return r.getOrganizations(ctx, filter, userID, string(domain.RoleRemoved))
}

func (r *PgxOrganizationRepository) AddMember(ctx context.Context, membership domain.OrganizationMember) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO organization_members (user_id, organization_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, organization_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.OrganizationID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("organization " + membership.OrganizationID + " does not exist")
		}
		return storeError("failed to add/update user "+membership.UserID+" in organization "+membership.OrganizationID, err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindMemberRole(ctx context.Context, userID, organizationID string) (*domain.OrganizationMember, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT user_id, organization_id, role, joined_at
		FROM organization_members
		WHERE user_id = $1 AND organization_id = $2;
	`
	var m models.OrganizationMember
	err := r.Pool.QueryRow(ctx, query, userID, organizationID).Scan(&m.UserID, &m.OrganizationID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("membership not found")
		}
		return nil, storeError("failed to find user "+userID+" role in "+organizationID, err)
	}
	member := mapping.ToDomainOrganizationMember(m)
	return &member, nil
}

func (r *PgxOrganizationRepository) ListMembers(ctx context.Context, organizationID string) ([]domain.OrganizationMember, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT user_id, organization_id, role, joined_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, storeError("failed to query members of "+organizationID, err)
	}
	defer rows.Close()
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.OrganizationMember])
	if err != nil {
		return nil, storeError("failed to collect member rows", err)
	}
	members := make([]domain.OrganizationMember, len(ms))
	for i, m := range ms {
		members[i] = mapping.ToDomainOrganizationMember(m)
	}
	return members, nil
}
