package dto

import (
	"time"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// CreateTenantRequest defines data for registering a new tenant.
type CreateTenantRequest struct {
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone"`
	UnitID    string    `json:"unitID" binding:"required,uuid"`
	StartDate time.Time `json:"startDate" binding:"required"`
}

// SetTenantActiveRequest toggles a tenant's active flag.
type SetTenantActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID  string    `json:"tenantID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	UnitID    string    `json:"unitID"`
	StartDate time.Time `json:"startDate"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTenantResponse converts domain.Tenant to its DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		Phone:     t.Phone,
		UnitID:    t.UnitID,
		StartDate: t.StartDate,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
	}
}

// ToTenantResponses converts a slice of tenants to DTOs.
func ToTenantResponses(tenants []domain.Tenant) []TenantResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = ToTenantResponse(&tenants[i])
	}
	return out
}
