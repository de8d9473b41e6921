package models

import "time"

// Organization is a row of the organizations table.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Description    string `db:"description"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// OrganizationMember is a row of the organization_members table.
type OrganizationMember struct {
	UserID         string    `db:"user_id"`
	OrganizationID string    `db:"organization_id"`
	Role           string    `db:"role"`
	JoinedAt       time.Time `db:"joined_at"`
}
