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

type PgxLineItemRepository struct {
	BaseRepository
}

func newPgxLineItemRepository(base BaseRepository) portsrepo.LineItemRepositoryFacade {
	return &PgxLineItemRepository{BaseRepository: base}
}

var _ portsrepo.LineItemRepositoryFacade = (*PgxLineItemRepository)(nil)

const lineItemSelectQuery = `
SELECT
	li.line_item_id, li.organization_id, li.category_id, li.name, li.description, li.type,
	li.is_recurring, li.is_active,
	li.created_at, li.created_by, li.last_updated_at, li.last_updated_by
FROM budget_line_items li
`

func (r *PgxLineItemRepository) getLineItems(ctx context.Context, filterQuery string, args ...any) ([]domain.LineItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, lineItemSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, storeError("failed to query line items", err)
	}
	defer rows.Close()
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LineItem])
	if err != nil {
		return nil, storeError("failed to collect line item rows", err)
	}
	return mapping.ToDomainLineItemSlice(items), nil
}

func (r *PgxLineItemRepository) FindLineItemByID(ctx context.Context, organizationID, lineItemID string) (*domain.LineItem, error) {
	items, err := r.getLineItems(ctx, `WHERE li.organization_id = $1 AND li.line_item_id = $2`, organizationID, lineItemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewNotFoundError("line item " + lineItemID + " not found")
	}
	return &items[0], nil
}

func (r *PgxLineItemRepository) ListLineItems(ctx context.Context, organizationID, categoryID string, includeInactive bool) ([]domain.LineItem, error) {
	filter := `WHERE li.organization_id = $1`
	args := []any{organizationID}
	if categoryID != "" {
		filter += ` AND li.category_id = $2`
		args = append(args, categoryID)
	}
	if !includeInactive {
		filter += ` AND li.is_active = true`
	}
	return r.getLineItems(ctx, filter+` ORDER BY li.name;`, args...)
}

func (r *PgxLineItemRepository) SaveLineItem(ctx context.Context, lineItem domain.LineItem) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelLineItem(lineItem)
	query := `
		INSERT INTO budget_line_items (
			line_item_id, organization_id, category_id, name, description, type,
			is_recurring, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LineItemID, m.OrganizationID, m.CategoryID, m.Name, m.Description, m.Type,
		m.IsRecurring, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("line item " + lineItem.Name + " already exists in category")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("category " + lineItem.CategoryID + " does not exist")
		}
		return storeError("failed to save line item "+lineItem.LineItemID, err)
	}
	return nil
}

func (r *PgxLineItemRepository) UpdateLineItem(ctx context.Context, lineItem domain.LineItem) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelLineItem(lineItem)
	query := `
		UPDATE budget_line_items
		SET name = $1, description = $2, is_recurring = $3, is_active = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE organization_id = $7 AND line_item_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Description, m.IsRecurring, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.OrganizationID, m.LineItemID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("line item " + lineItem.Name + " already exists in category")
		}
		return storeError("failed to update line item "+lineItem.LineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("line item " + lineItem.LineItemID + " not found")
	}
	return nil
}

// DeleteLineItem relies on ON DELETE CASCADE to drop the item's budget_data rows.
func (r *PgxLineItemRepository) DeleteLineItem(ctx context.Context, organizationID, lineItemID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM budget_line_items WHERE organization_id = $1 AND line_item_id = $2;`,
		organizationID, lineItemID,
	)
	if err != nil {
		return storeError("failed to delete line item "+lineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("line item " + lineItemID + " not found")
	}
	return nil
}
