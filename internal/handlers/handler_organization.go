package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/SscSPs/budget_forecast_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

// newOrganizationHandler creates a new organizationHandler.
func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{
		organizationService: os,
	}
}

// registerOrganizationRoutes registers routes related to organizations and their members.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(organizationService)

	orgs := rg.Group("/organizations")
	{
		orgs.POST("", h.createOrganization)
		orgs.GET("", h.listUserOrganizations)
		orgs.GET("/:org_id", h.getOrganization)
		orgs.POST("/:org_id/members", h.addMember)
		orgs.GET("/:org_id/members", h.listMembers)
	}
}

// createOrganization godoc
// @Summary Create a new organization
// @Description Creates a new organization and assigns the creator as admin.
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create organization"
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrganization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create organization", slog.String("organization_name", req.Name))

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req.Name, req.Description, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create organization")
		return
	}

	logger.Info("Organization created successfully", slog.String("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// listUserOrganizations godoc
// @Summary List organizations for current user
// @Description Retrieves the organizations the authenticated user belongs to.
// @Tags organizations
// @Produce  json
// @Success 200 {object} dto.ListOrganizationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list organizations"
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listUserOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orgs, err := h.organizationService.ListUserOrganizations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list organizations")
		return
	}

	logger.Info("Organizations listed successfully", slog.Int("count", len(orgs)))
	c.JSON(http.StatusOK, dto.ToListOrganizationsResponse(orgs))
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce  json
// @Param   org_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Organization not found"
// @Security BearerAuth
// @Router /organizations/{org_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	org, err := h.organizationService.FindOrganizationByID(c.Request.Context(), scope.organizationID, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to get organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// addMember godoc
// @Summary Add a user to an organization
// @Description Adds a user with a role, or changes the role of an existing member (requires admin permission).
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   org_id path string true "Organization ID"
// @Param   member body dto.AddMemberRequest true "User ID and Role"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Failure 500 {object} map[string]string "Failed to add member"
// @Security BearerAuth
// @Router /organizations/{org_id}/members [post]
func (h *organizationHandler) addMember(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scope.logger.Warn("Failed to bind JSON for AddMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger := scope.logger.With(slog.String("target_user_id", req.UserID))
	logger.Info("Received request to add member", slog.String("role", string(req.Role)))

	if err := h.organizationService.AddMember(c.Request.Context(), scope.userID, req.UserID, scope.organizationID, req.Role); err != nil {
		respondError(c, logger, err, "Failed to add member to organization")
		return
	}

	logger.Info("Member added to organization successfully")
	c.Status(http.StatusNoContent)
}

// listMembers godoc
// @Summary List organization members
// @Tags organizations
// @Produce  json
// @Param   org_id path string true "Organization ID"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{org_id}/members [get]
func (h *organizationHandler) listMembers(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}

	members, err := h.organizationService.ListMembers(c.Request.Context(), scope.organizationID, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}
