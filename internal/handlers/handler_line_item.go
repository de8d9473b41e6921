package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// lineItemHandler handles HTTP requests related to line items.
type lineItemHandler struct {
	registryService portssvc.CategoryRegistrySvcFacade
}

func newLineItemHandler(rs portssvc.CategoryRegistrySvcFacade) *lineItemHandler {
	return &lineItemHandler{registryService: rs}
}

func registerLineItemRoutes(rg *gin.RouterGroup, registryService portssvc.CategoryRegistrySvcFacade) {
	h := newLineItemHandler(registryService)

	items := rg.Group("/line-items")
	{
		items.GET("", h.listLineItems)
		items.POST("", h.createLineItem)
		items.PUT("/:line_item_id", h.updateLineItem)
		items.DELETE("/:line_item_id", h.deleteLineItem)
	}
}

// listLineItems godoc
// @Summary List line items
// @Tags line-items
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param categoryID query string false "Restrict to one category"
// @Param includeInactive query bool false "Include deactivated line items"
// @Success 200 {object} dto.ListLineItemsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{org_id}/line-items [get]
func (h *lineItemHandler) listLineItems(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	items, err := h.registryService.ListLineItems(c.Request.Context(), scope.organizationID, c.Query("categoryID"), queryBool(c, "includeInactive"), scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list line items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLineItemsResponse(items))
}

// createLineItem godoc
// @Summary Create a line item
// @Description Creates a line item under a category. When seedYear is given the year's budget is initialized.
// @Tags line-items
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param lineItem body dto.CreateLineItemRequest true "Line item details"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Line item name already used"
// @Failure 423 {object} map[string]string "Budget is locked for the seed year"
// @Security BearerAuth
// @Router /organizations/{org_id}/line-items [post]
func (h *lineItemHandler) createLineItem(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	var req dto.CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for CreateLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.registryService.CreateLineItem(c.Request.Context(), scope.organizationID, req, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to create line item")
		return
	}

	scope.logger.Info("Line item created successfully", slog.String("line_item_id", item.LineItemID))
	c.JSON(http.StatusCreated, dto.ToLineItemResponse(item))
}

// updateLineItem godoc
// @Summary Update a line item
// @Tags line-items
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param line_item_id path string true "Line item ID"
// @Param lineItem body dto.UpdateLineItemRequest true "Fields to update"
// @Success 200 {object} dto.LineItemResponse
// @Failure 404 {object} map[string]string "Line item not found"
// @Security BearerAuth
// @Router /organizations/{org_id}/line-items/{line_item_id} [put]
func (h *lineItemHandler) updateLineItem(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	lineItemID := c.Param("line_item_id")

	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for UpdateLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.registryService.UpdateLineItem(c.Request.Context(), scope.organizationID, lineItemID, req, scope.userID)
	if err != nil {
		respondError(c, scope.logger.With(slog.String("line_item_id", lineItemID)), err, "Failed to update line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToLineItemResponse(item))
}

// deleteLineItem godoc
// @Summary Delete a line item
// @Description Removes the line item together with all of its budget data.
// @Tags line-items
// @Param org_id path string true "Organization ID"
// @Param line_item_id path string true "Line item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Line item not found"
// @Security BearerAuth
// @Router /organizations/{org_id}/line-items/{line_item_id} [delete]
func (h *lineItemHandler) deleteLineItem(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	lineItemID := c.Param("line_item_id")

	if err := h.registryService.DeleteLineItem(c.Request.Context(), scope.organizationID, lineItemID, scope.userID); err != nil {
		respondError(c, scope.logger.With(slog.String("line_item_id", lineItemID)), err, "Failed to delete line item")
		return
	}
	scope.logger.Info("Line item deleted", slog.String("line_item_id", lineItemID))
	c.Status(http.StatusNoContent)
}
