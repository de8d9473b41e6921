package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/google/uuid"
)

// registryService implements the CategoryRegistrySvcFacade interface
type registryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	lineItemRepo portsrepo.LineItemRepositoryFacade
	budgetData   portssvc.BudgetDataSvc
	now          func() time.Time
}

// NewRegistryService creates the category and line item registry. budgetData seeds the
// budget of new line items and may be nil when seeding is not needed.
func NewRegistryService(
	categoryRepo portsrepo.CategoryRepositoryFacade,
	lineItemRepo portsrepo.LineItemRepositoryFacade,
	budgetData portssvc.BudgetDataSvc,
	options ...Option,
) portssvc.CategoryRegistrySvcFacade {
	svc := &registryService{
		categoryRepo: categoryRepo,
		lineItemRepo: lineItemRepo,
		budgetData:   budgetData,
		now:          time.Now,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.CategoryRegistrySvcFacade = (*registryService)(nil)

func requiredName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationFailedError(kind + " name is required")
	}
	return name, nil
}

func parseItemType(s string) (domain.ItemType, error) {
	t, err := domain.ParseItemType(s)
	if err != nil {
		return "", apperrors.NewValidationFailedError(err.Error())
	}
	return t, nil
}

// --- Categories ---

func (s *registryService) CreateCategory(ctx context.Context, organizationID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	name, err := requiredName("category", req.Name)
	if err != nil {
		return nil, err
	}
	itemType, err := parseItemType(req.Type)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create category",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	now := s.now()
	category := domain.Category{
		CategoryID:     uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		Type:           itemType,
		Description:    req.Description,
		Color:          req.Color,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("organization_id", organizationID),
			slog.String("name", name))
		return nil, err
	}
	s.AnnounceChange(ctx, domain.EventRegistryChanged, organizationID, 0, userID)

	s.LogInfo(ctx, "Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("organization_id", organizationID))
	return &category, nil
}

func (s *registryService) UpdateCategory(ctx context.Context, organizationID, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := requiredName("category", *req.Name)
		if err != nil {
			return nil, err
		}
		category.Name = name
	}
	if req.Type != nil {
		itemType, err := parseItemType(*req.Type)
		if err != nil {
			return nil, err
		}
		if itemType != category.Type {
			count, err := s.categoryRepo.CountLineItems(ctx, organizationID, categoryID)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, apperrors.NewValidationFailedError(
					fmt.Sprintf("cannot change type of category %q: it has %d line items", category.Name, count))
			}
			category.Type = itemType
		}
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = s.now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category",
			slog.String("category_id", categoryID))
		return nil, err
	}
	s.AnnounceChange(ctx, domain.EventRegistryChanged, organizationID, 0, userID)

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *registryService) DeactivateCategory(ctx context.Context, organizationID, categoryID, userID string) error {
	inactive := false
	_, err := s.UpdateCategory(ctx, organizationID, categoryID, dto.UpdateCategoryRequest{IsActive: &inactive}, userID)
	return err
}

func (s *registryService) ListCategories(ctx context.Context, organizationID string, includeInactive bool, userID string) ([]domain.Category, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx, organizationID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// --- Line items ---

func (s *registryService) CreateLineItem(ctx context.Context, organizationID string, req dto.CreateLineItemRequest, userID string) (*domain.LineItem, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	name, err := requiredName("line item", req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create line item",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("category %s does not exist", req.CategoryID))
		}
		return nil, err
	}
	if !category.IsActive {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("category %q is inactive", category.Name))
	}

	itemType := category.Type
	if req.Type != "" {
		requested, err := parseItemType(req.Type)
		if err != nil {
			return nil, err
		}
		if requested != category.Type {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("line item type %s does not match category type %s", requested, category.Type))
		}
	}

	now := s.now()
	lineItem := domain.LineItem{
		LineItemID:     uuid.NewString(),
		OrganizationID: organizationID,
		CategoryID:     category.CategoryID,
		Name:           name,
		Description:    req.Description,
		Type:           itemType,
		IsRecurring:    req.IsRecurring,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.lineItemRepo.SaveLineItem(ctx, lineItem); err != nil {
		s.LogError(ctx, err, "Failed to save line item",
			slog.String("organization_id", organizationID),
			slog.String("category_id", category.CategoryID))
		return nil, err
	}
	s.AnnounceChange(ctx, domain.EventRegistryChanged, organizationID, 0, userID)

	if req.SeedYear != nil && s.budgetData != nil {
		if err := s.seedBudget(ctx, lineItem, *req.SeedYear, req, userID); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Line item created",
		slog.String("line_item_id", lineItem.LineItemID),
		slog.String("category_id", category.CategoryID))
	return &lineItem, nil
}

// seedBudget writes the first year of budget for a new line item. If that fails the
// line item is removed again so the caller can retry the whole creation.
func (s *registryService) seedBudget(ctx context.Context, lineItem domain.LineItem, year int, req dto.CreateLineItemRequest, userID string) error {
	amounts := domain.ZeroAmounts()
	if lineItem.IsRecurring && req.RecurringAmount != nil {
		amounts = domain.Uniform(*req.RecurringAmount)
	}

	err := s.budgetData.BulkSetValues(ctx, lineItem.OrganizationID, lineItem.LineItemID, year, amounts, domain.KindBudget, userID)
	if err == nil {
		return nil
	}
	s.LogError(ctx, err, "Failed to seed budget for new line item",
		slog.String("line_item_id", lineItem.LineItemID),
		slog.Int("year", year))
	if delErr := s.lineItemRepo.DeleteLineItem(ctx, lineItem.OrganizationID, lineItem.LineItemID); delErr != nil {
		s.LogError(ctx, delErr, "Failed to remove line item after seeding failed",
			slog.String("line_item_id", lineItem.LineItemID))
	}
	s.AnnounceChange(ctx, domain.EventRegistryChanged, lineItem.OrganizationID, 0, userID)
	return fmt.Errorf("seeding budget for line item: %w", err)
}

func (s *registryService) UpdateLineItem(ctx context.Context, organizationID, lineItemID string, req dto.UpdateLineItemRequest, userID string) (*domain.LineItem, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	lineItem, err := s.lineItemRepo.FindLineItemByID(ctx, organizationID, lineItemID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name, err := requiredName("line item", *req.Name)
		if err != nil {
			return nil, err
		}
		lineItem.Name = name
	}
	if req.Description != nil {
		lineItem.Description = *req.Description
	}
	if req.IsRecurring != nil {
		lineItem.IsRecurring = *req.IsRecurring
	}
	if req.IsActive != nil {
		lineItem.IsActive = *req.IsActive
	}
	lineItem.LastUpdatedAt = s.now()
	lineItem.LastUpdatedBy = userID

	if err := s.lineItemRepo.UpdateLineItem(ctx, *lineItem); err != nil {
		s.LogError(ctx, err, "Failed to update line item",
			slog.String("line_item_id", lineItemID))
		return nil, err
	}
	s.AnnounceChange(ctx, domain.EventRegistryChanged, organizationID, 0, userID)
	return lineItem, nil
}

func (s *registryService) DeleteLineItem(ctx context.Context, organizationID, lineItemID, userID string) error {
	if err := requireOrganization(organizationID); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return err
	}
	if err := s.lineItemRepo.DeleteLineItem(ctx, organizationID, lineItemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete line item",
				slog.String("line_item_id", lineItemID))
		}
		return err
	}
	s.AnnounceChange(ctx, domain.EventRegistryChanged, organizationID, 0, userID)

	s.LogInfo(ctx, "Line item deleted",
		slog.String("line_item_id", lineItemID),
		slog.String("organization_id", organizationID))
	return nil
}

func (s *registryService) ListLineItems(ctx context.Context, organizationID, categoryID string, includeInactive bool, userID string) ([]domain.LineItem, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	items, err := s.lineItemRepo.ListLineItems(ctx, organizationID, categoryID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list line items",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if items == nil {
		return []domain.LineItem{}, nil
	}
	return items, nil
}
