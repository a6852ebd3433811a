package domain

import "time"

// Tenant is a person renting a unit. Several tenants may reference the same
// unit over time; only active tenants are considered for invoice generation.
type Tenant struct {
	TenantID  string    `json:"tenantID"` // Primary Key (UUID)
	OwnerID   string    `json:"ownerID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	UnitID    string    `json:"unitID"` // FK -> units.unit_id
	StartDate time.Time `json:"startDate"`
	Active    bool      `json:"active"`
	AuditFields
}
