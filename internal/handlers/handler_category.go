package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to budget categories.
type categoryHandler struct {
	registryService portssvc.CategoryRegistrySvcFacade
}

func newCategoryHandler(rs portssvc.CategoryRegistrySvcFacade) *categoryHandler {
	return &categoryHandler{registryService: rs}
}

// registerCategoryRoutes registers category routes under an organization group.
func registerCategoryRoutes(rg *gin.RouterGroup, registryService portssvc.CategoryRegistrySvcFacade) {
	h := newCategoryHandler(registryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PUT("/:category_id", h.updateCategory)
		categories.DELETE("/:category_id", h.deactivateCategory)
	}
}

// listCategories godoc
// @Summary List budget categories
// @Tags categories
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param includeInactive query bool false "Include deactivated categories"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /organizations/{org_id}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	cats, err := h.registryService.ListCategories(c.Request.Context(), scope.organizationID, queryBool(c, "includeInactive"), scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(cats))
}

// createCategory godoc
// @Summary Create a budget category
// @Tags categories
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Category name already used"
// @Security BearerAuth
// @Router /organizations/{org_id}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cat, err := h.registryService.CreateCategory(c.Request.Context(), scope.organizationID, req, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to create category")
		return
	}

	scope.logger.Info("Category created successfully", slog.String("category_id", cat.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// updateCategory godoc
// @Summary Update a budget category
// @Description Applies the provided fields. Changing the type of a category that has line items is rejected.
// @Tags categories
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param category_id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /organizations/{org_id}/categories/{category_id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	categoryID := c.Param("category_id")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cat, err := h.registryService.UpdateCategory(c.Request.Context(), scope.organizationID, categoryID, req, scope.userID)
	if err != nil {
		respondError(c, scope.logger.With(slog.String("category_id", categoryID)), err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// deactivateCategory godoc
// @Summary Deactivate a budget category
// @Tags categories
// @Param org_id path string true "Organization ID"
// @Param category_id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /organizations/{org_id}/categories/{category_id} [delete]
func (h *categoryHandler) deactivateCategory(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	categoryID := c.Param("category_id")

	if err := h.registryService.DeactivateCategory(c.Request.Context(), scope.organizationID, categoryID, scope.userID); err != nil {
		respondError(c, scope.logger.With(slog.String("category_id", categoryID)), err, "Failed to deactivate category")
		return
	}
	c.Status(http.StatusNoContent)
}
