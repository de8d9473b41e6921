package services

import (
	"github.com/SscSPs/budget_forecast_app/internal/cache"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// wsCache and publisher may be nil.
func NewServiceContainer(repos portsrepo.RepositoryProvider, wsCache *cache.WorkingSetCache, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Organization service first since every other service authorizes through it
	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	authorizer := WithOrganizationAuthorizer(container.Organization)

	container.WorkingSet = NewWorkingSetService(WorkingSetRepos{
		Categories: repos.CategoryRepo,
		LineItems:  repos.LineItemRepo,
		Data:       repos.BudgetDataRepo,
		Versions:   repos.VersionRepo,
	}, wsCache)
	invalidator := WithWorkingSet(container.WorkingSet)
	events := WithEventPublisher(publisher)

	container.BudgetData = NewBudgetDataService(repos.BudgetDataRepo, repos.LineItemRepo, repos.VersionRepo, authorizer, invalidator)
	container.Registry = NewRegistryService(repos.CategoryRepo, repos.LineItemRepo, container.BudgetData, authorizer, invalidator)
	container.Version = NewVersionService(repos.VersionRepo, authorizer, invalidator, events)
	container.Actuals = NewActualsService(repos.BudgetDataRepo, container.WorkingSet, authorizer, events)
	container.Report = NewReportService(container.WorkingSet, authorizer)

	return container
}
