package dto

import (
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a budget category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,itemtype"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the fields that can be changed on a category. Nil fields are left alone.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type" binding:"omitempty,itemtype"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID     string          `json:"categoryID"`
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Type           domain.ItemType `json:"type"`
	Description    string          `json:"description"`
	Color          string          `json:"color"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:     c.CategoryID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Type:           c.Type,
		Description:    c.Description,
		Color:          c.Color,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
		LastUpdatedAt:  c.LastUpdatedAt,
		LastUpdatedBy:  c.LastUpdatedBy,
	}
}

// ListCategoriesResponse wraps a list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts a slice of domain.Category to DTO.
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	list := make([]CategoryResponse, len(cs))
	for i := range cs {
		list[i] = ToCategoryResponse(&cs[i])
	}
	return ListCategoriesResponse{Categories: list}
}

// CreateLineItemRequest defines the data needed to create a line item.
// When SeedYear is set the year's budget is initialized: RecurringAmount in every month
// for recurring items, zeros otherwise.
type CreateLineItemRequest struct {
	CategoryID      string           `json:"categoryID" binding:"required"`
	Name            string           `json:"name" binding:"required"`
	Description     string           `json:"description"`
	Type            string           `json:"type" binding:"omitempty,itemtype"` // defaults to the category's type
	IsRecurring     bool             `json:"isRecurring"`
	SeedYear        *int             `json:"seedYear" binding:"omitempty,min=1900,max=9999"`
	RecurringAmount *decimal.Decimal `json:"recurringAmount"`
}

// UpdateLineItemRequest defines the fields that can be changed on a line item.
type UpdateLineItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsRecurring *bool   `json:"isRecurring"`
	IsActive    *bool   `json:"isActive"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID     string          `json:"lineItemID"`
	OrganizationID string          `json:"organizationID"`
	CategoryID     string          `json:"categoryID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Type           domain.ItemType `json:"type"`
	IsRecurring    bool            `json:"isRecurring"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO
func ToLineItemResponse(li *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:     li.LineItemID,
		OrganizationID: li.OrganizationID,
		CategoryID:     li.CategoryID,
		Name:           li.Name,
		Description:    li.Description,
		Type:           li.Type,
		IsRecurring:    li.IsRecurring,
		IsActive:       li.IsActive,
		CreatedAt:      li.CreatedAt,
		CreatedBy:      li.CreatedBy,
		LastUpdatedAt:  li.LastUpdatedAt,
		LastUpdatedBy:  li.LastUpdatedBy,
	}
}

// ListLineItemsResponse wraps a list of line items.
type ListLineItemsResponse struct {
	LineItems []LineItemResponse `json:"lineItems"`
}

// ToListLineItemsResponse converts a slice of domain.LineItem to DTO.
func ToListLineItemsResponse(items []domain.LineItem) ListLineItemsResponse {
	list := make([]LineItemResponse, len(items))
	for i := range items {
		list[i] = ToLineItemResponse(&items[i])
	}
	return ListLineItemsResponse{LineItems: list}
}
