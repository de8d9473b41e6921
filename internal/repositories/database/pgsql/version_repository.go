package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/budget_forecast_app/internal/models"
	"github.com/SscSPs/budget_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxVersionRepository struct {
	BaseRepository
}

func newPgxVersionRepository(base BaseRepository) portsrepo.VersionRepositoryFacade {
	return &PgxVersionRepository{BaseRepository: base}
}

var _ portsrepo.VersionRepositoryFacade = (*PgxVersionRepository)(nil)

const versionColumns = `
	organization_id, year, version_type, is_locked, locked_at, locked_by,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxVersionRepository) FindVersion(ctx context.Context, organizationID string, year int, versionType domain.VersionType) (*domain.Version, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx,
		`SELECT `+versionColumns+` FROM budget_versions WHERE organization_id = $1 AND year = $2 AND version_type = $3;`,
		organizationID, year, string(versionType),
	)
	if err != nil {
		return nil, storeError("failed to query budget version", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BudgetVersion])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s version for %d not found", versionType, year))
		}
		return nil, storeError("failed to collect budget version", err)
	}
	v := mapping.ToDomainVersion(m)
	return &v, nil
}

func (r *PgxVersionRepository) ListVersions(ctx context.Context, organizationID string, year int) ([]domain.Version, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx,
		`SELECT `+versionColumns+` FROM budget_versions WHERE organization_id = $1 AND year = $2 ORDER BY version_type;`,
		organizationID, year,
	)
	if err != nil {
		return nil, storeError("failed to query budget versions", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BudgetVersion])
	if err != nil {
		return nil, storeError("failed to collect budget versions", err)
	}
	return mapping.ToDomainVersionSlice(ms), nil
}

// UpsertBudgetLock keeps the first lock stamp when a locked budget is locked again,
// and clears the stamp on unlock.
func (r *PgxVersionRepository) UpsertBudgetLock(ctx context.Context, version domain.Version) (*domain.Version, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO budget_versions (` + versionColumns + `)
		VALUES ($1, $2, 'budget', $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (organization_id, year, version_type) DO UPDATE SET
			is_locked = EXCLUDED.is_locked,
			locked_at = CASE
				WHEN NOT EXCLUDED.is_locked THEN NULL
				WHEN budget_versions.is_locked THEN budget_versions.locked_at
				ELSE EXCLUDED.locked_at END,
			locked_by = CASE
				WHEN NOT EXCLUDED.is_locked THEN NULL
				WHEN budget_versions.is_locked THEN budget_versions.locked_by
				ELSE EXCLUDED.locked_by END,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + versionColumns + `;`

	rows, err := r.Pool.Query(ctx, query,
		version.OrganizationID, version.Year, version.IsLocked, version.LockedAt, version.LockedBy,
		version.CreatedAt, version.CreatedBy, version.LastUpdatedAt, version.LastUpdatedBy,
	)
	if err != nil {
		return nil, storeError("failed to upsert budget lock", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BudgetVersion])
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewValidationFailedError("organization " + version.OrganizationID + " does not exist")
		}
		return nil, storeError("failed to upsert budget lock", err)
	}
	stored := mapping.ToDomainVersion(m)
	return &stored, nil
}

// DeriveForecast records the forecast version first so a concurrent derive without
// overwrite loses on the unique key before any data is touched.
func (r *PgxVersionRepository) DeriveForecast(ctx context.Context, organizationID string, year int, overwrite bool, userID string) (*domain.Version, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	conflict := `DO NOTHING`
	if overwrite {
		conflict = `DO UPDATE SET last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by`
	}
	versionQuery := `
		INSERT INTO budget_versions (` + versionColumns + `)
		VALUES ($1, $2, 'forecast', false, NULL, NULL, $3, $4, $3, $4)
		ON CONFLICT (organization_id, year, version_type) ` + conflict + `
		RETURNING ` + versionColumns + `;`

	now := time.Now().UTC()
	var forecast domain.Version
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, versionQuery, organizationID, year, now, userID)
		if err != nil {
			return storeError("failed to record forecast version", err)
		}
		m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BudgetVersion])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrDuplicate
			}
			if isForeignKeyViolation(err) {
				return apperrors.NewValidationFailedError("organization " + organizationID + " does not exist")
			}
			return storeError("failed to record forecast version", err)
		}
		forecast = mapping.ToDomainVersion(m)

		_, err = tx.Exec(ctx, `
			UPDATE budget_data
			SET forecast_amount = budget_amount, updated_at = $3, updated_by = $4
			WHERE organization_id = $1 AND year = $2;
		`, organizationID, year, now, userID)
		if err != nil {
			return storeError("failed to copy budget into forecast", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &forecast, nil
}
