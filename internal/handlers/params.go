package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/SscSPs/budget_forecast_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestScope carries the path values every organization route needs.
type requestScope struct {
	logger         *slog.Logger
	userID         string
	organizationID string
}

// scopeFromRequest resolves the logger, caller and organization of a request.
// It writes the error response itself and returns false when something is missing.
func scopeFromRequest(c *gin.Context) (requestScope, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return requestScope{}, false
	}

	organizationID := c.Param("org_id")
	if organizationID == "" {
		logger.Error("Organization ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID required in path"})
		return requestScope{}, false
	}

	logger = logger.With(slog.String("organization_id", organizationID))
	return requestScope{logger: logger, userID: userID, organizationID: organizationID}, true
}

func pathYear(c *gin.Context, logger *slog.Logger) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 9999 {
		logger.Warn("Invalid year in path", slog.String("year", c.Param("year")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be a number between 1900 and 9999"})
		return 0, false
	}
	return year, true
}

func pathMonth(c *gin.Context, logger *slog.Logger) (domain.Month, bool) {
	n, err := strconv.Atoi(c.Param("month"))
	month := domain.Month(n)
	if err != nil || !month.Valid() {
		logger.Warn("Invalid month in path", slog.String("month", c.Param("month")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be a number between 1 and 12"})
		return 0, false
	}
	return month, true
}

// queryKind reads ?kind=, defaulting to budget.
func queryKind(c *gin.Context, logger *slog.Logger) (domain.AmountKind, bool) {
	kind, err := domain.ParseAmountKind(c.DefaultQuery("kind", string(domain.KindBudget)))
	if err != nil {
		logger.Warn("Invalid amount kind", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of budget, forecast, actuals"})
		return "", false
	}
	return kind, true
}

func queryBool(c *gin.Context, name string) bool {
	b, _ := strconv.ParseBool(c.Query(name))
	return b
}
