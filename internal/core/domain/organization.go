package domain

import "time"

// Organization is the tenant that owns categories, line items, budget data and versions.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (UUID)
	Name           string `json:"name"`
	Description    string `json:"description"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// MemberRole defines the possible roles a user can have within an organization.
type MemberRole string

const (
	RoleAdmin    MemberRole = "ADMIN"
	RoleMember   MemberRole = "MEMBER"
	RoleReadOnly MemberRole = "READONLY" // Can view budgets and reports only
	RoleRemoved  MemberRole = "REMOVED"  // Former members keep their row for audit
)

// OrganizationMember represents the membership of a user in an organization.
type OrganizationMember struct {
	UserID         string     `json:"userID"`
	OrganizationID string     `json:"organizationID"`
	Role           MemberRole `json:"role"`
	JoinedAt       time.Time  `json:"joinedAt"`
}
