package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	LineItemRepo     LineItemRepositoryFacade
	BudgetDataRepo   BudgetDataRepositoryFacade
	VersionRepo      VersionRepositoryFacade
}
