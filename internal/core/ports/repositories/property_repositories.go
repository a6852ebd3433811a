package repositories

import (
	"context"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// UnitRepository defines persistence operations for rental units.
type UnitRepository interface {
	// SaveUnit inserts a new unit.
	SaveUnit(ctx context.Context, unit domain.Unit) error

	// FindUnitByID retrieves a unit owned by ownerID, or apperrors.ErrNotFound.
	FindUnitByID(ctx context.Context, ownerID, unitID string) (*domain.Unit, error)

	// ListUnits retrieves all units for an owner.
	ListUnits(ctx context.Context, ownerID string) ([]domain.Unit, error)

	// DeleteUnitCascade deletes a unit together with every tenant, utility
	// charge, invoice and payment referencing it, in one transaction.
	DeleteUnitCascade(ctx context.Context, ownerID, unitID string) error
}

// TenantRepository defines persistence operations for tenants.
type TenantRepository interface {
	// SaveTenant inserts a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// FindTenantByID retrieves a tenant owned by ownerID, or apperrors.ErrNotFound.
	FindTenantByID(ctx context.Context, ownerID, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves all tenants for an owner.
	ListTenants(ctx context.Context, ownerID string) ([]domain.Tenant, error)

	// SetTenantActive toggles the active flag on a tenant.
	SetTenantActive(ctx context.Context, ownerID, tenantID string, active bool, updatedBy string) error

	// DeleteTenantCascade deletes a tenant together with every invoice and
	// payment referencing it, in one transaction.
	DeleteTenantCascade(ctx context.Context, ownerID, tenantID string) error
}

// UtilityRepository defines persistence operations for utility charges.
type UtilityRepository interface {
	// SaveUtilityCharge inserts a new charge.
	SaveUtilityCharge(ctx context.Context, charge domain.UtilityCharge) error

	// ListUtilityCharges retrieves all charges for an owner.
	ListUtilityCharges(ctx context.Context, ownerID string) ([]domain.UtilityCharge, error)

	// DeleteUtilityCharge deletes a single charge.
	DeleteUtilityCharge(ctx context.Context, ownerID, chargeID string) error
}
