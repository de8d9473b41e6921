package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// budgetDataHandler handles reads and writes of monthly budget amounts.
type budgetDataHandler struct {
	budgetDataService portssvc.BudgetDataSvc
}

func newBudgetDataHandler(bs portssvc.BudgetDataSvc) *budgetDataHandler {
	return &budgetDataHandler{budgetDataService: bs}
}

// registerBudgetDataRoutes registers data routes under /budget/:year.
func registerBudgetDataRoutes(rg *gin.RouterGroup, budgetDataService portssvc.BudgetDataSvc) {
	h := newBudgetDataHandler(budgetDataService)

	rg.GET("/data", h.getDataPoints)
	rg.GET("/summary", h.getSummary)
	rg.PUT("/line-items/:line_item_id", h.bulkSetValues)
	rg.PUT("/line-items/:line_item_id/months/:month", h.setValue)
}

// getDataPoints godoc
// @Summary Get budget data of a year
// @Description Returns every stored month of every line item, annotated with line item and category.
// @Tags budget
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Success 200 {object} dto.BudgetRecordsResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/data [get]
func (h *budgetDataHandler) getDataPoints(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}

	records, err := h.budgetDataService.GetDataPoints(c.Request.Context(), scope.organizationID, year, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to get budget data")
		return
	}
	c.JSON(http.StatusOK, dto.BudgetRecordsResponse{
		OrganizationID: scope.organizationID,
		Year:           year,
		Records:        records,
	})
}

// getSummary godoc
// @Summary Get projected budget summary
// @Description selector=budget returns budget amounts only, forecast returns forecast and actual amounts, all returns everything.
// @Tags budget
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param selector query string false "budget, forecast or all" default(all)
// @Success 200 {object} dto.BudgetRecordsResponse
// @Failure 400 {object} map[string]string "Invalid selector"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/summary [get]
func (h *budgetDataHandler) getSummary(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}
	selector := domain.SummarySelector(c.DefaultQuery("selector", string(domain.SelectAll)))
	if !selector.Valid() {
		scope.logger.Warn("Invalid summary selector", slog.String("selector", string(selector)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "selector must be one of budget, forecast, all"})
		return
	}

	records, err := h.budgetDataService.GetBudgetSummary(c.Request.Context(), scope.organizationID, year, selector, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to get budget summary")
		return
	}
	c.JSON(http.StatusOK, dto.BudgetRecordsResponse{
		OrganizationID: scope.organizationID,
		Year:           year,
		Selector:       string(selector),
		Records:        records,
	})
}

// setValue godoc
// @Summary Set one month of a line item
// @Tags budget
// @Accept json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param line_item_id path string true "Line item ID"
// @Param month path int true "Month (1-12)"
// @Param value body dto.SetValueRequest true "Amount and kind"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Line item not found"
// @Failure 423 {object} map[string]string "Budget is locked"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/line-items/{line_item_id}/months/{month} [put]
func (h *budgetDataHandler) setValue(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}
	month, ok := pathMonth(c, scope.logger)
	if !ok {
		return
	}
	lineItemID := c.Param("line_item_id")

	var req dto.SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for SetValue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	kind, _ := domain.ParseAmountKind(req.Kind)

	logger := scope.logger.With(slog.String("line_item_id", lineItemID), slog.Int("year", year), slog.Int("month", int(month)))
	if err := h.budgetDataService.SetValue(c.Request.Context(), scope.organizationID, lineItemID, year, month, *req.Amount, kind, scope.userID); err != nil {
		respondError(c, logger, err, "Failed to set budget value")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkSetValues godoc
// @Summary Set all twelve months of a line item
// @Tags budget
// @Accept json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param line_item_id path string true "Line item ID"
// @Param values body dto.BulkSetValuesRequest true "Twelve amounts and kind"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 423 {object} map[string]string "Budget is locked"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/line-items/{line_item_id} [put]
func (h *budgetDataHandler) bulkSetValues(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}
	lineItemID := c.Param("line_item_id")

	var req dto.BulkSetValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for BulkSetValues", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	kind, _ := domain.ParseAmountKind(req.Kind)

	logger := scope.logger.With(slog.String("line_item_id", lineItemID), slog.Int("year", year))
	if err := h.budgetDataService.BulkSetValues(c.Request.Context(), scope.organizationID, lineItemID, year, req.MonthlyAmounts(), kind, scope.userID); err != nil {
		respondError(c, logger, err, "Failed to set budget values")
		return
	}
	c.Status(http.StatusNoContent)
}
