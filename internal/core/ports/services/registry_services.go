package services

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
)

// CategorySvc defines operations on budget categories
type CategorySvc interface {
	CreateCategory(ctx context.Context, organizationID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// UpdateCategory applies the non-nil fields of req. Changing the type of a category
	// that still has line items is rejected.
	UpdateCategory(ctx context.Context, organizationID, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)

	// DeactivateCategory soft-deletes a category.
	DeactivateCategory(ctx context.Context, organizationID, categoryID, userID string) error

	ListCategories(ctx context.Context, organizationID string, includeInactive bool, userID string) ([]domain.Category, error)
}

// LineItemSvc defines operations on line items
type LineItemSvc interface {
	// CreateLineItem creates a line item under a category, inheriting its type, and
	// optionally seeds one year of budget values.
	CreateLineItem(ctx context.Context, organizationID string, req dto.CreateLineItemRequest, userID string) (*domain.LineItem, error)

	UpdateLineItem(ctx context.Context, organizationID, lineItemID string, req dto.UpdateLineItemRequest, userID string) (*domain.LineItem, error)

	// DeleteLineItem hard-deletes a line item together with its budget data.
	DeleteLineItem(ctx context.Context, organizationID, lineItemID, userID string) error

	ListLineItems(ctx context.Context, organizationID, categoryID string, includeInactive bool, userID string) ([]domain.LineItem, error)
}

// CategoryRegistrySvcFacade combines category and line item operations
type CategoryRegistrySvcFacade interface {
	CategorySvc
	LineItemSvc
}
