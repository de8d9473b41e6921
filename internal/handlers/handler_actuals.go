package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type actualsHandler struct {
	actualsService portssvc.ActualsSvc
}

func newActualsHandler(as portssvc.ActualsSvc) *actualsHandler {
	return &actualsHandler{actualsService: as}
}

func registerActualsRoutes(rg *gin.RouterGroup, actualsService portssvc.ActualsSvc) {
	h := newActualsHandler(actualsService)

	rg.POST("/months/:month/lock", h.lockMonth)
	rg.GET("/months/:month/status", h.monthStatus)
}

// lockMonth godoc
// @Summary Close a month
// @Description Realizes actuals for every line item: the forecast is copied where no actual was recorded. Re-running completes a partial close.
// @Tags actuals
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} domain.MonthLockResult
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Failure 503 {object} map[string]string "Store unavailable, partial result may have been applied"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/months/{month}/lock [post]
func (h *actualsHandler) lockMonth(c *gin.Context) {
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

	logger := scope.logger.With(slog.Int("year", year), slog.Int("month", int(month)))
	result, err := h.actualsService.LockMonthAsActual(c.Request.Context(), scope.organizationID, year, month, scope.userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close month")
		return
	}
	c.JSON(http.StatusOK, result)
}

// monthStatus godoc
// @Summary Get whether a month is closed
// @Tags actuals
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthStatusResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/months/{month}/status [get]
func (h *actualsHandler) monthStatus(c *gin.Context) {
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

	locked, err := h.actualsService.LockedMonths(c.Request.Context(), scope.organizationID, year, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to get month status")
		return
	}
	isLocked := false
	for _, m := range locked {
		if m == month {
			isLocked = true
			break
		}
	}
	c.JSON(http.StatusOK, dto.MonthStatusResponse{
		OrganizationID: scope.organizationID,
		Year:           year,
		Month:          month,
		IsLocked:       isLocked,
		LockedMonths:   locked,
	})
}
