package repositories

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
)

// CategoryReader defines read operations for budget categories
type CategoryReader interface {
	// FindCategoryByID retrieves a category of an organization.
	FindCategoryByID(ctx context.Context, organizationID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the categories of an organization ordered by name.
	ListCategories(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Category, error)

	// CountLineItems counts the line items under a category, active or not.
	CountLineItems(ctx context.Context, organizationID, categoryID string) (int, error)
}

// CategoryWriter defines write operations for budget categories
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// LineItemReader defines read operations for line items
type LineItemReader interface {
	// FindLineItemByID retrieves a line item of an organization.
	FindLineItemByID(ctx context.Context, organizationID, lineItemID string) (*domain.LineItem, error)

	// ListLineItems retrieves line items, optionally restricted to one category.
	ListLineItems(ctx context.Context, organizationID, categoryID string, includeInactive bool) ([]domain.LineItem, error)
}

// LineItemWriter defines write operations for line items
type LineItemWriter interface {
	SaveLineItem(ctx context.Context, lineItem domain.LineItem) error
	UpdateLineItem(ctx context.Context, lineItem domain.LineItem) error

	// DeleteLineItem removes a line item; its budget data rows go with it.
	DeleteLineItem(ctx context.Context, organizationID, lineItemID string) error
}

// LineItemRepositoryFacade combines all line-item-related repository interfaces
type LineItemRepositoryFacade interface {
	LineItemReader
	LineItemWriter
}
