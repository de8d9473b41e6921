package pgsql

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_forecast_app/internal/models"
	"github.com/SscSPs/budget_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(base BaseRepository) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: base}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelectQuery = `
SELECT
	c.category_id, c.organization_id, c.name, c.type, c.description, c.color, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM budget_categories c
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, categorySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, storeError("failed to query categories", err)
	}
	defer rows.Close()
	cats, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, storeError("failed to collect category rows", err)
	}
	return mapping.ToDomainCategorySlice(cats), nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, organizationID, categoryID string) (*domain.Category, error) {
	cats, err := r.getCategories(ctx, `WHERE c.organization_id = $1 AND c.category_id = $2`, organizationID, categoryID)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, apperrors.NewNotFoundError("category " + categoryID + " not found")
	}
	return &cats[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Category, error) {
	filter := `WHERE c.organization_id = $1`
	if !includeInactive {
		filter += ` AND c.is_active = true`
	}
	return r.getCategories(ctx, filter+` ORDER BY c.name;`, organizationID)
}

func (r *PgxCategoryRepository) CountLineItems(ctx context.Context, organizationID, categoryID string) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM budget_line_items WHERE organization_id = $1 AND category_id = $2;`,
		organizationID, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, storeError("failed to count line items of category "+categoryID, err)
	}
	return count, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO budget_categories (
			category_id, organization_id, name, type, description, color, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.OrganizationID, m.Name, m.Type, m.Description, m.Color, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("category " + category.Name + " already exists")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("organization " + category.OrganizationID + " does not exist")
		}
		return storeError("failed to save category "+category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelCategory(category)
	query := `
		UPDATE budget_categories
		SET name = $1, type = $2, description = $3, color = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE organization_id = $8 AND category_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Type, m.Description, m.Color, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.OrganizationID, m.CategoryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("category " + category.Name + " already exists")
		}
		return storeError("failed to update category "+category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + category.CategoryID + " not found")
	}
	return nil
}
