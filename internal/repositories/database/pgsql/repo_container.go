package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool, QueryTimeout: queryTimeout}

	return portsrepo.RepositoryProvider{
		OrganizationRepo: newPgxOrganizationRepository(base),
		CategoryRepo:     newPgxCategoryRepository(base),
		LineItemRepo:     newPgxLineItemRepository(base),
		BudgetDataRepo:   newPgxBudgetDataRepository(base),
		VersionRepo:      newPgxVersionRepository(base),
	}
}
