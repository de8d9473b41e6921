package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the postgres repositories. It follows the
// same upsert semantics as the SQL: a write touches only its own amount column.
type memStore struct {
	mu         sync.Mutex
	orgs       map[string]domain.Organization
	members    map[string]domain.OrganizationMember // user|org
	categories map[string]domain.Category
	lineItems  map[string]domain.LineItem
	points     map[string]domain.BudgetDataPoint // org|line|year|month
	versions   map[string]domain.Version         // org|year|type

	// failUpsert makes UpsertValue fail for the given line item ids
	failUpsert map[string]error
	failSeries error
	upserts    int
}

func newMemStore() *memStore {
	return &memStore{
		orgs:       make(map[string]domain.Organization),
		members:    make(map[string]domain.OrganizationMember),
		categories: make(map[string]domain.Category),
		lineItems:  make(map[string]domain.LineItem),
		points:     make(map[string]domain.BudgetDataPoint),
		versions:   make(map[string]domain.Version),
		failUpsert: make(map[string]error),
	}
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: s,
		CategoryRepo:     s,
		LineItemRepo:     s,
		BudgetDataRepo:   s,
		VersionRepo:      s,
	}
}

func pointKey(org, lineItem string, year int, month domain.Month) string {
	return fmt.Sprintf("%s|%s|%d|%d", org, lineItem, year, month)
}

func versionKey(org string, year int, vt domain.VersionType) string {
	return fmt.Sprintf("%s|%d|%s", org, year, vt)
}

// --- organizations ---

func (s *memStore) FindOrganizationByID(_ context.Context, organizationID string) (*domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orgs[organizationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &o, nil
}

func (s *memStore) ListOrganizationsByUserID(_ context.Context, userID string) ([]domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Organization
	for _, m := range s.members {
		if m.UserID == userID && m.Role != domain.RoleRemoved {
			out = append(out, s.orgs[m.OrganizationID])
		}
	}
	return out, nil
}

func (s *memStore) SaveOrganization(_ context.Context, organization domain.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs[organization.OrganizationID] = organization
	return nil
}

func (s *memStore) AddMember(_ context.Context, membership domain.OrganizationMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[membership.UserID+"|"+membership.OrganizationID] = membership
	return nil
}

func (s *memStore) FindMemberRole(_ context.Context, userID, organizationID string) (*domain.OrganizationMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[userID+"|"+organizationID]
	if !ok {
		return nil, apperrors.NewNotFoundError("membership not found")
	}
	return &m, nil
}

func (s *memStore) ListMembers(_ context.Context, organizationID string) ([]domain.OrganizationMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.OrganizationMember
	for _, m := range s.members {
		if m.OrganizationID == organizationID {
			out = append(out, m)
		}
	}
	return out, nil
}

// --- categories ---

func (s *memStore) FindCategoryByID(_ context.Context, organizationID, categoryID string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[categoryID]
	if !ok || c.OrganizationID != organizationID {
		return nil, apperrors.NewNotFoundError("category " + categoryID + " not found")
	}
	return &c, nil
}

func (s *memStore) ListCategories(_ context.Context, organizationID string, includeInactive bool) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Category
	for _, c := range s.categories {
		if c.OrganizationID == organizationID && (includeInactive || c.IsActive) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) CountLineItems(_ context.Context, organizationID, categoryID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, li := range s.lineItems {
		if li.OrganizationID == organizationID && li.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) SaveCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.OrganizationID == category.OrganizationID && c.Name == category.Name {
			return apperrors.NewConflictError("category " + category.Name + " already exists")
		}
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *memStore) UpdateCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.CategoryID]; !ok {
		return apperrors.NewNotFoundError("category " + category.CategoryID + " not found")
	}
	s.categories[category.CategoryID] = category
	return nil
}

// --- line items ---

func (s *memStore) FindLineItemByID(_ context.Context, organizationID, lineItemID string) (*domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	li, ok := s.lineItems[lineItemID]
	if !ok || li.OrganizationID != organizationID {
		return nil, apperrors.NewNotFoundError("line item " + lineItemID + " not found")
	}
	return &li, nil
}

func (s *memStore) ListLineItems(_ context.Context, organizationID, categoryID string, includeInactive bool) ([]domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LineItem
	for _, li := range s.lineItems {
		if li.OrganizationID != organizationID || (categoryID != "" && li.CategoryID != categoryID) {
			continue
		}
		if includeInactive || li.IsActive {
			out = append(out, li)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) SaveLineItem(_ context.Context, lineItem domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineItems[lineItem.LineItemID] = lineItem
	return nil
}

func (s *memStore) UpdateLineItem(_ context.Context, lineItem domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lineItems[lineItem.LineItemID]; !ok {
		return apperrors.NewNotFoundError("line item " + lineItem.LineItemID + " not found")
	}
	s.lineItems[lineItem.LineItemID] = lineItem
	return nil
}

func (s *memStore) DeleteLineItem(_ context.Context, organizationID, lineItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	li, ok := s.lineItems[lineItemID]
	if !ok || li.OrganizationID != organizationID {
		return apperrors.NewNotFoundError("line item " + lineItemID + " not found")
	}
	delete(s.lineItems, lineItemID)
	for k, p := range s.points {
		if p.LineItemID == lineItemID {
			delete(s.points, k)
		}
	}
	return nil
}

// --- budget data ---

func (s *memStore) ListDataPoints(_ context.Context, organizationID string, year int) ([]domain.BudgetDataPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.BudgetDataPoint
	for _, p := range s.points {
		if p.OrganizationID == organizationID && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) FindDataPoint(_ context.Context, organizationID, lineItemID string, year int, month domain.Month) (*domain.BudgetDataPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.points[pointKey(organizationID, lineItemID, year, month)]
	if !ok {
		return nil, apperrors.NewNotFoundError("no budget data")
	}
	return &p, nil
}

func (s *memStore) GetBudgetSummary(_ context.Context, organizationID string, year int, selector domain.SummarySelector) ([]domain.BudgetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.BudgetRecord
	for _, p := range s.points {
		if p.OrganizationID != organizationID || p.Year != year {
			continue
		}
		li := s.lineItems[p.LineItemID]
		c := s.categories[li.CategoryID]
		switch selector {
		case domain.SelectBudget:
			p.ForecastAmount, p.ActualAmount = decimal.Zero, decimal.Zero
		case domain.SelectForecast:
			p.BudgetAmount = decimal.Zero
		}
		out = append(out, domain.BudgetRecord{
			BudgetDataPoint: p,
			LineItemName:    li.Name,
			LineItemType:    li.Type,
			IsRecurring:     li.IsRecurring,
			CategoryID:      c.CategoryID,
			CategoryName:    c.Name,
			CategoryType:    c.Type,
			CategoryColor:   c.Color,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LineItemName != out[j].LineItemName {
			return out[i].LineItemName < out[j].LineItemName
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

func (s *memStore) upsertLocked(point domain.BudgetDataPoint, kind domain.AmountKind) {
	key := pointKey(point.OrganizationID, point.LineItemID, point.Year, point.Month)
	existing, ok := s.points[key]
	if !ok {
		existing = domain.BudgetDataPoint{
			OrganizationID: point.OrganizationID,
			LineItemID:     point.LineItemID,
			Year:           point.Year,
			Month:          point.Month,
		}
	}
	existing = existing.WithAmount(kind, point.Amount(kind))
	if kind == domain.KindActuals && existing.ActualLockedAt == nil && point.ActualLockedAt != nil {
		stamp := *point.ActualLockedAt
		existing.ActualLockedAt = &stamp
	}
	existing.UpdatedAt = point.UpdatedAt
	existing.UpdatedBy = point.UpdatedBy
	s.points[key] = existing
	s.upserts++
}

func (s *memStore) UpsertValue(_ context.Context, point domain.BudgetDataPoint, kind domain.AmountKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failUpsert[point.LineItemID]; err != nil {
		return err
	}
	s.upsertLocked(point, kind)
	return nil
}

func (s *memStore) UpsertSeries(_ context.Context, organizationID, lineItemID string, year int, amounts domain.MonthlyAmounts, kind domain.AmountKind, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSeries != nil {
		return s.failSeries
	}
	now := time.Now()
	for _, m := range domain.Months() {
		s.upsertLocked(domain.BudgetDataPoint{
			OrganizationID: organizationID,
			LineItemID:     lineItemID,
			Year:           year,
			Month:          m,
			UpdatedAt:      now,
			UpdatedBy:      userID,
		}.WithAmount(kind, amounts.At(m)), kind)
	}
	return nil
}

// --- versions ---

func (s *memStore) FindVersion(_ context.Context, organizationID string, year int, versionType domain.VersionType) (*domain.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.versions[versionKey(organizationID, year, versionType)]
	if !ok {
		return nil, apperrors.NewNotFoundError("version not found")
	}
	return &v, nil
}

func (s *memStore) ListVersions(_ context.Context, organizationID string, year int) ([]domain.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Version
	for _, vt := range []domain.VersionType{domain.VersionBudget, domain.VersionForecast} {
		if v, ok := s.versions[versionKey(organizationID, year, vt)]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *memStore) UpsertBudgetLock(_ context.Context, version domain.Version) (*domain.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := versionKey(version.OrganizationID, version.Year, domain.VersionBudget)
	stored, ok := s.versions[key]
	if !ok {
		stored = version
		stored.VersionType = domain.VersionBudget
	}
	switch {
	case !version.IsLocked:
		stored.LockedAt, stored.LockedBy = nil, nil
	case !stored.IsLocked || !ok:
		stored.LockedAt, stored.LockedBy = version.LockedAt, version.LockedBy
	}
	stored.IsLocked = version.IsLocked
	stored.LastUpdatedAt = version.LastUpdatedAt
	stored.LastUpdatedBy = version.LastUpdatedBy
	s.versions[key] = stored
	return &stored, nil
}

func (s *memStore) DeriveForecast(_ context.Context, organizationID string, year int, overwrite bool, userID string) (*domain.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := versionKey(organizationID, year, domain.VersionForecast)
	forecast, exists := s.versions[key]
	if exists && !overwrite {
		return nil, apperrors.ErrDuplicate
	}
	now := time.Now()
	if !exists {
		forecast = domain.Version{
			OrganizationID: organizationID,
			Year:           year,
			VersionType:    domain.VersionForecast,
			AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: userID},
		}
	}
	forecast.LastUpdatedAt, forecast.LastUpdatedBy = now, userID
	s.versions[key] = forecast

	for k, p := range s.points {
		if p.OrganizationID == organizationID && p.Year == year {
			p.ForecastAmount = p.BudgetAmount
			s.points[k] = p
		}
	}
	return &forecast, nil
}

var (
	_ portsrepo.OrganizationRepositoryFacade = (*memStore)(nil)
	_ portsrepo.CategoryRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.LineItemRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.BudgetDataRepositoryFacade   = (*memStore)(nil)
	_ portsrepo.VersionRepositoryFacade      = (*memStore)(nil)
)
