package mapping

import (
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/SscSPs/budget_forecast_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:     d.CategoryID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Type:           string(d.Type),
		Description:    d.Description,
		Color:          d.Color,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:     m.CategoryID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Type:           domain.ItemType(m.Type),
		Description:    m.Description,
		Color:          m.Color,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:     d.LineItemID,
		OrganizationID: d.OrganizationID,
		CategoryID:     d.CategoryID,
		Name:           d.Name,
		Description:    d.Description,
		Type:           string(d.Type),
		IsRecurring:    d.IsRecurring,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:     m.LineItemID,
		OrganizationID: m.OrganizationID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Description:    m.Description,
		Type:           domain.ItemType(m.Type),
		IsRecurring:    m.IsRecurring,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}

// ToDomainBudgetDataPoint converts a budget_data row to a domain BudgetDataPoint
func ToDomainBudgetDataPoint(m models.BudgetData) domain.BudgetDataPoint {
	return domain.BudgetDataPoint{
		OrganizationID: m.OrganizationID,
		LineItemID:     m.LineItemID,
		Year:           m.Year,
		Month:          domain.Month(m.Month),
		BudgetAmount:   m.BudgetAmount,
		ForecastAmount: m.ForecastAmount,
		ActualAmount:   m.ActualAmount,
		ActualLockedAt: m.ActualLockedAt,
		UpdatedAt:      m.UpdatedAt,
		UpdatedBy:      m.UpdatedBy,
	}
}

// ToDomainBudgetDataPointSlice converts budget_data rows to domain BudgetDataPoints
func ToDomainBudgetDataPointSlice(ms []models.BudgetData) []domain.BudgetDataPoint {
	ds := make([]domain.BudgetDataPoint, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetDataPoint(m)
	}
	return ds
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToDomainBudgetRecord converts a get_budget_summary row to a domain BudgetRecord.
// A missing category reads as empty strings, which group as "uncategorized".
func ToDomainBudgetRecord(m models.BudgetSummaryRow) domain.BudgetRecord {
	return domain.BudgetRecord{
		BudgetDataPoint: ToDomainBudgetDataPoint(m.BudgetData),
		LineItemName:    m.LineItemName,
		LineItemType:    domain.ItemType(m.LineItemType),
		IsRecurring:     m.IsRecurring,
		CategoryID:      deref(m.CategoryID),
		CategoryName:    deref(m.CategoryName),
		CategoryType:    domain.ItemType(deref(m.CategoryType)),
		CategoryColor:   deref(m.CategoryColor),
	}
}

// ToDomainBudgetRecordSlice converts get_budget_summary rows to domain BudgetRecords
func ToDomainBudgetRecordSlice(ms []models.BudgetSummaryRow) []domain.BudgetRecord {
	ds := make([]domain.BudgetRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetRecord(m)
	}
	return ds
}

// ToDomainVersion converts a budget_versions row to a domain Version
func ToDomainVersion(m models.BudgetVersion) domain.Version {
	return domain.Version{
		OrganizationID: m.OrganizationID,
		Year:           m.Year,
		VersionType:    domain.VersionType(m.VersionType),
		IsLocked:       m.IsLocked,
		LockedAt:       m.LockedAt,
		LockedBy:       m.LockedBy,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVersionSlice converts budget_versions rows to domain Versions
func ToDomainVersionSlice(ms []models.BudgetVersion) []domain.Version {
	ds := make([]domain.Version, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVersion(m)
	}
	return ds
}
