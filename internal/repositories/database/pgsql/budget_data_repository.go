package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_forecast_app/internal/models"
	"github.com/SscSPs/budget_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxBudgetDataRepository struct {
	BaseRepository
}

func newPgxBudgetDataRepository(base BaseRepository) portsrepo.BudgetDataRepositoryFacade {
	return &PgxBudgetDataRepository{BaseRepository: base}
}

var _ portsrepo.BudgetDataRepositoryFacade = (*PgxBudgetDataRepository)(nil)

const budgetDataSelectQuery = `
SELECT
	bd.organization_id, bd.line_item_id, bd.year, bd.month,
	bd.budget_amount, bd.forecast_amount, bd.actual_amount, bd.actual_locked_at,
	bd.updated_at, bd.updated_by
FROM budget_data bd
`

func (r *PgxBudgetDataRepository) getDataPoints(ctx context.Context, filterQuery string, args ...any) ([]domain.BudgetDataPoint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, budgetDataSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, storeError("failed to query budget data", err)
	}
	defer rows.Close()
	points, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BudgetData])
	if err != nil {
		return nil, storeError("failed to collect budget data rows", err)
	}
	return mapping.ToDomainBudgetDataPointSlice(points), nil
}

func (r *PgxBudgetDataRepository) ListDataPoints(ctx context.Context, organizationID string, year int) ([]domain.BudgetDataPoint, error) {
	return r.getDataPoints(ctx,
		`WHERE bd.organization_id = $1 AND bd.year = $2 ORDER BY bd.line_item_id, bd.month;`,
		organizationID, year,
	)
}

func (r *PgxBudgetDataRepository) FindDataPoint(ctx context.Context, organizationID, lineItemID string, year int, month domain.Month) (*domain.BudgetDataPoint, error) {
	points, err := r.getDataPoints(ctx,
		`WHERE bd.organization_id = $1 AND bd.line_item_id = $2 AND bd.year = $3 AND bd.month = $4`,
		organizationID, lineItemID, year, int(month),
	)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no budget data for line item %s in %d-%02d", lineItemID, year, month))
	}
	return &points[0], nil
}

func (r *PgxBudgetDataRepository) GetBudgetSummary(ctx context.Context, organizationID string, year int, selector domain.SummarySelector) ([]domain.BudgetRecord, error) {
	if !selector.Valid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown summary selector %q", selector))
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, `SELECT * FROM get_budget_summary($1, $2, $3);`, organizationID, year, string(selector))
	if err != nil {
		return nil, storeError("failed to query budget summary", err)
	}
	defer rows.Close()
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BudgetSummaryRow])
	if err != nil {
		return nil, storeError("failed to collect budget summary rows", err)
	}
	return mapping.ToDomainBudgetRecordSlice(records), nil
}

// upsertValueQuery builds the single-column upsert for kind. The column name
// comes from a fixed whitelist; values are always bound.
func upsertValueQuery(kind domain.AmountKind) (string, error) {
	col, err := kind.Column()
	if err != nil {
		return "", apperrors.NewValidationFailedError(err.Error())
	}
	lockClause := ""
	if kind == domain.KindActuals {
		lockClause = ", actual_locked_at = COALESCE(budget_data.actual_locked_at, EXCLUDED.actual_locked_at)"
	}
	return fmt.Sprintf(`
		INSERT INTO budget_data (
			organization_id, line_item_id, year, month, %[1]s, actual_locked_at, updated_at, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (organization_id, line_item_id, year, month)
		DO UPDATE SET %[1]s = EXCLUDED.%[1]s%[2]s,
			updated_at = EXCLUDED.updated_at, updated_by = EXCLUDED.updated_by;
	`, col, lockClause), nil
}

// lockStamp returns the close stamp carried by an actuals write. Only month close sets one;
// plain actual writes leave actual_locked_at untouched.
func lockStamp(kind domain.AmountKind, stamp *time.Time) *time.Time {
	if kind != domain.KindActuals {
		return nil
	}
	return stamp
}

func (r *PgxBudgetDataRepository) UpsertValue(ctx context.Context, point domain.BudgetDataPoint, kind domain.AmountKind) error {
	query, err := upsertValueQuery(kind)
	if err != nil {
		return err
	}
	if !point.Month.Valid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("month %d is out of range", point.Month))
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	updatedAt := point.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err = r.Pool.Exec(ctx, query,
		point.OrganizationID, point.LineItemID, point.Year, int(point.Month),
		point.Amount(kind),
		lockStamp(kind, point.ActualLockedAt),
		updatedAt, point.UpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("line item " + point.LineItemID + " does not exist")
		}
		return storeError("failed to upsert budget data", err)
	}
	return nil
}

// UpsertSeries writes all twelve months in one transaction. It never closes a month.
func (r *PgxBudgetDataRepository) UpsertSeries(ctx context.Context, organizationID, lineItemID string, year int, amounts domain.MonthlyAmounts, kind domain.AmountKind, userID string) error {
	query, err := upsertValueQuery(kind)
	if err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	return r.withTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, m := range domain.Months() {
			batch.Queue(query,
				organizationID, lineItemID, year, int(m),
				amounts.At(m),
				nil,
				now, userID,
			)
		}
		results := tx.SendBatch(ctx, batch)
		for range domain.Months() {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				if isForeignKeyViolation(err) {
					return apperrors.NewValidationFailedError("line item " + lineItemID + " does not exist")
				}
				return storeError("failed to upsert budget series", err)
			}
		}
		if err := results.Close(); err != nil {
			return storeError("failed to close budget series batch", err)
		}
		return nil
	})
}
