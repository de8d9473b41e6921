package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/dto"
	"github.com/SscSPs/budget_forecast_app/internal/handlers"
	"github.com/SscSPs/budget_forecast_app/internal/middleware"
	"github.com/SscSPs/budget_forecast_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RegistryService ---
type MockRegistryService struct {
	mock.Mock
}

func (m *MockRegistryService) CreateCategory(ctx context.Context, organizationID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockRegistryService) UpdateCategory(ctx context.Context, organizationID, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, organizationID, categoryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockRegistryService) DeactivateCategory(ctx context.Context, organizationID, categoryID, userID string) error {
	args := m.Called(ctx, organizationID, categoryID, userID)
	return args.Error(0)
}
func (m *MockRegistryService) ListCategories(ctx context.Context, organizationID string, includeInactive bool, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, organizationID, includeInactive, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockRegistryService) CreateLineItem(ctx context.Context, organizationID string, req dto.CreateLineItemRequest, userID string) (*domain.LineItem, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}
func (m *MockRegistryService) UpdateLineItem(ctx context.Context, organizationID, lineItemID string, req dto.UpdateLineItemRequest, userID string) (*domain.LineItem, error) {
	args := m.Called(ctx, organizationID, lineItemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}
func (m *MockRegistryService) DeleteLineItem(ctx context.Context, organizationID, lineItemID, userID string) error {
	args := m.Called(ctx, organizationID, lineItemID, userID)
	return args.Error(0)
}
func (m *MockRegistryService) ListLineItems(ctx context.Context, organizationID, categoryID string, includeInactive bool, userID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, organizationID, categoryID, includeInactive, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

var _ portssvc.CategoryRegistrySvcFacade = (*MockRegistryService)(nil)

// --- Mock OrganizationService ---
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) FindOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) ListMembers(ctx context.Context, organizationID, requestingUserID string) ([]domain.OrganizationMember, error) {
	args := m.Called(ctx, organizationID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganizationMember), args.Error(1)
}
func (m *MockOrganizationService) CreateOrganization(ctx context.Context, name, description, creatorUserID string) (*domain.Organization, error) {
	args := m.Called(ctx, name, description, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) AddMember(ctx context.Context, addingUserID, targetUserID, organizationID string, role domain.MemberRole) error {
	args := m.Called(ctx, addingUserID, targetUserID, organizationID, role)
	return args.Error(0)
}
func (m *MockOrganizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error {
	args := m.Called(ctx, userID, organizationID, requiredRole)
	return args.Error(0)
}

var _ portssvc.OrganizationSvcFacade = (*MockOrganizationService)(nil)

// --- Test Suite ---
type RegistryHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	registry      *MockRegistryService
	organizations *MockOrganizationService
	token         string
	userID        string
}

const registryTestSecret = "registry-test-secret-key"

func (suite *RegistryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.userID = "user-42"

	token, err := utils.GenerateJWT(suite.userID, registryTestSecret, time.Hour, "")
	suite.Require().NoError(err)
	suite.token = token

	suite.registry = new(MockRegistryService)
	suite.organizations = new(MockOrganizationService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(registryTestSecret, ""))
	handlers.RegisterAPIRoutes(v1, &portssvc.ServiceContainer{
		Organization: suite.organizations,
		Registry:     suite.registry,
	})
}

func (suite *RegistryHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, "/api/v1"+path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RegistryHandlerTestSuite) TestCreateCategory_Success() {
	req := dto.CreateCategoryRequest{Name: "Payroll", Type: "expense", Color: "#aa3300"}
	suite.registry.On("CreateCategory", mock.Anything, "org-1", req, suite.userID).
		Return(&domain.Category{CategoryID: "cat-1", OrganizationID: "org-1", Name: "Payroll", Type: domain.Expense, Color: "#aa3300", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/organizations/org-1/categories", `{"name":"Payroll","type":"expense","color":"#aa3300"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CategoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("cat-1", resp.CategoryID)
	suite.Equal(domain.Expense, resp.Type)
	suite.registry.AssertExpectations(suite.T())
}

func (suite *RegistryHandlerTestSuite) TestCreateCategory_BindingErrors() {
	cases := map[string]string{
		"missing name": `{"type":"REVENUE"}`,
		"unknown type": `{"name":"Sales","type":"ASSET"}`,
		"bad color":    `{"name":"Sales","type":"REVENUE","color":"blue"}`,
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/organizations/org-1/categories", body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.registry.AssertNotCalled(suite.T(), "CreateCategory")
}

func (suite *RegistryHandlerTestSuite) TestCreateCategory_DuplicateName() {
	suite.registry.On("CreateCategory", mock.Anything, "org-1", mock.Anything, suite.userID).
		Return(nil, apperrors.NewConflictError("category Sales already exists")).Once()

	w := suite.do(http.MethodPost, "/organizations/org-1/categories", `{"name":"Sales","type":"REVENUE"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RegistryHandlerTestSuite) TestUpdateCategory_TypeChangeRejected() {
	suite.registry.On("UpdateCategory", mock.Anything, "org-1", "cat-1", mock.Anything, suite.userID).
		Return(nil, apperrors.NewValidationFailedError("cannot change the type of a category that has line items")).Once()

	w := suite.do(http.MethodPut, "/organizations/org-1/categories/cat-1", `{"type":"REVENUE"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "line items")
}

func (suite *RegistryHandlerTestSuite) TestListLineItems_Filters() {
	suite.registry.On("ListLineItems", mock.Anything, "org-1", "cat-9", true, suite.userID).
		Return([]domain.LineItem{{LineItemID: "li-1", CategoryID: "cat-9", Name: "Rent"}}, nil).Once()

	w := suite.do(http.MethodGet, "/organizations/org-1/line-items?categoryID=cat-9&includeInactive=true", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListLineItemsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.LineItems, 1)
}

func (suite *RegistryHandlerTestSuite) TestDeleteLineItem_NotFound() {
	suite.registry.On("DeleteLineItem", mock.Anything, "org-1", "li-404", suite.userID).
		Return(apperrors.NewNotFoundError("line item li-404 not found")).Once()

	w := suite.do(http.MethodDelete, "/organizations/org-1/line-items/li-404", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RegistryHandlerTestSuite) TestCreateLineItem_SeedYearOutOfRange() {
	w := suite.do(http.MethodPost, "/organizations/org-1/line-items", `{"categoryID":"cat-1","name":"Rent","seedYear":1800}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.registry.AssertNotCalled(suite.T(), "CreateLineItem")
}

func (suite *RegistryHandlerTestSuite) TestAddMember() {
	suite.organizations.On("AddMember", mock.Anything, suite.userID, "user-7", "org-1", domain.RoleReadOnly).
		Return(nil).Once()

	w := suite.do(http.MethodPost, "/organizations/org-1/members", `{"userID":"user-7","role":"READONLY"}`)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.organizations.AssertExpectations(suite.T())
}

func (suite *RegistryHandlerTestSuite) TestAddMember_NotAdmin() {
	suite.organizations.On("AddMember", mock.Anything, suite.userID, "user-7", "org-1", domain.RoleAdmin).
		Return(fmt.Errorf("only admins can add members: %w", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPost, "/organizations/org-1/members", `{"userID":"user-7","role":"ADMIN"}`)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestRegistryHandler(t *testing.T) {
	suite.Run(t, new(RegistryHandlerTestSuite))
}
