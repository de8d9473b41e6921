package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// versionHandler handles the budget lock and forecast derivation.
type versionHandler struct {
	versionService portssvc.VersionSvc
}

func newVersionHandler(vs portssvc.VersionSvc) *versionHandler {
	return &versionHandler{versionService: vs}
}

func registerVersionRoutes(rg *gin.RouterGroup, versionService portssvc.VersionSvc) {
	h := newVersionHandler(versionService)

	rg.GET("/versions", h.getVersions)
	rg.PUT("/versions/budget/lock", h.lockBudget)
	rg.POST("/forecast", h.createForecast)
}

// getVersions godoc
// @Summary Get budget and forecast versions of a year
// @Tags versions
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Success 200 {object} domain.VersionStatus
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/versions [get]
func (h *versionHandler) getVersions(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}

	status, err := h.versionService.GetVersions(c.Request.Context(), scope.organizationID, year, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to get versions")
		return
	}
	c.JSON(http.StatusOK, status)
}

// lockBudget godoc
// @Summary Lock or unlock the budget of a year
// @Description Requires admin. Locking an already locked budget keeps the original lock stamp.
// @Tags versions
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param lock body dto.LockVersionRequest true "Lock state"
// @Success 200 {object} domain.Version
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/versions/budget/lock [put]
func (h *versionHandler) lockBudget(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}

	var req dto.LockVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for LockVersion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	version, err := h.versionService.LockVersion(c.Request.Context(), scope.organizationID, year, *req.IsLocked, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to change budget lock")
		return
	}
	c.JSON(http.StatusOK, version)
}

// createForecast godoc
// @Summary Derive the forecast from the budget
// @Description Copies budget into forecast for every line item and month. Fails with 409 when the forecast exists and overwrite is false.
// @Tags versions
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param year path int true "Budget year"
// @Param options body dto.CreateForecastRequest false "Overwrite flag"
// @Success 201 {object} domain.Version
// @Failure 409 {object} map[string]string "Forecast already exists"
// @Security BearerAuth
// @Router /organizations/{org_id}/budget/{year}/forecast [post]
func (h *versionHandler) createForecast(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	year, ok := pathYear(c, scope.logger)
	if !ok {
		return
	}

	var req dto.CreateForecastRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			scope.logger.Warn("Failed to bind JSON for CreateForecast", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	forecast, err := h.versionService.CreateForecastFromBudget(c.Request.Context(), scope.organizationID, year, req.Overwrite, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to derive forecast")
		return
	}
	c.JSON(http.StatusCreated, forecast)
}
