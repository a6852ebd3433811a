package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// TenantService handles business logic for tenants.
type TenantService struct {
	tenantRepo portsrepo.TenantRepository
	unitRepo   portsrepo.UnitRepository
}

// NewTenantService creates a new TenantService.
func NewTenantService(tenantRepo portsrepo.TenantRepository, unitRepo portsrepo.UnitRepository) portssvc.TenantSvc {
	return &TenantService{tenantRepo: tenantRepo, unitRepo: unitRepo}
}

var _ portssvc.TenantSvc = (*TenantService)(nil)

// CreateTenant persists a new tenant after verifying the referenced unit
// belongs to the owner.
func (s *TenantService) CreateTenant(ctx context.Context, ownerID string, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	if _, err := s.unitRepo.FindUnitByID(ctx, ownerID, req.UnitID); err != nil {
		return nil, fmt.Errorf("failed to validate unit reference: %w", err)
	}

	now := time.Now()
	tenant := domain.Tenant{
		TenantID:  uuid.NewString(),
		OwnerID:   ownerID,
		Name:      req.Name,
		Phone:     req.Phone,
		UnitID:    req.UnitID,
		StartDate: req.StartDate,
		Active:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return &tenant, nil
}

// ListTenants retrieves all tenants for the owner.
func (s *TenantService) ListTenants(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	if tenants == nil {
		tenants = []domain.Tenant{}
	}
	return tenants, nil
}

// SetTenantActive toggles the active flag. Inactive tenants are skipped by
// invoice generation but keep their history.
func (s *TenantService) SetTenantActive(ctx context.Context, ownerID, tenantID string, active bool) error {
	if err := s.tenantRepo.SetTenantActive(ctx, ownerID, tenantID, active, ownerID); err != nil {
		return fmt.Errorf("failed to update tenant active flag: %w", err)
	}
	return nil
}

// DeleteTenant removes a tenant along with its invoices and payments.
func (s *TenantService) DeleteTenant(ctx context.Context, ownerID, tenantID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.tenantRepo.FindTenantByID(ctx, ownerID, tenantID); err != nil {
		return fmt.Errorf("failed to find tenant for delete: %w", err)
	}

	if err := s.tenantRepo.DeleteTenantCascade(ctx, ownerID, tenantID); err != nil {
		logger.Error("Cascading tenant delete failed", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	logger.Info("Tenant deleted with cascade", slog.String("tenant_id", tenantID))
	return nil
}
