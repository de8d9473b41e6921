package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportHandler serves aggregation and comparison views.
type reportHandler struct {
	reportService portssvc.ReportSvc
}

func newReportHandler(rs portssvc.ReportSvc) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvc) {
	h := newReportHandler(reportService)

	rg.GET("/totals", h.getTotals)
	rg.GET("/categories", h.getCategoryTotals)
	rg.GET("/comparison", h.getComparison)
}

// getTotals godoc
// @Summary Get revenue, expense and profit/loss totals
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param kind query string false "budget, forecast or actuals" default(budget)
// @Success 200 {object} domain.TotalsReport
// @Failure 400 {object} map[string]string "Invalid kind"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/totals [get]
func (h *reportHandler) getTotals(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}
	kind, ok := queryKind(c, scope.logger)
	if !ok {
		return
	}

	report, err := h.reportService.GetTotals(c.Request.Context(), scope.organizationID, year, kind, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getCategoryTotals godoc
// @Summary Get totals per category
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param kind query string false "budget, forecast or actuals" default(budget)
// @Success 200 {object} dto.ListCategoryTotalsResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/categories [get]
func (h *reportHandler) getCategoryTotals(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}
	kind, ok := queryKind(c, scope.logger)
	if !ok {
		return
	}

	totals, err := h.reportService.GetCategoryTotals(c.Request.Context(), scope.organizationID, year, kind, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to compute category totals")
		return
	}
	c.JSON(http.StatusOK, dto.ListCategoryTotalsResponse{
		OrganizationID: scope.organizationID,
		Year:           year,
		Kind:           kind,
		Categories:     totals,
	})
}

// getComparison godoc
// @Summary Compare budget, forecast and actuals
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Success 200 {object} domain.Comparison
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/comparison [get]
func (h *reportHandler) getComparison(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}

	comparison, err := h.reportService.GetComparison(c.Request.Context(), scope.organizationID, year, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to build comparison")
		return
	}
	c.JSON(http.StatusOK, comparison)
}
