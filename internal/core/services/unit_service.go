package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// UnitService handles business logic for rental units.
type UnitService struct {
	unitRepo portsrepo.UnitRepository
}

// NewUnitService creates a new UnitService.
func NewUnitService(unitRepo portsrepo.UnitRepository) portssvc.UnitSvc {
	return &UnitService{unitRepo: unitRepo}
}

var _ portssvc.UnitSvc = (*UnitService)(nil)

// CreateUnit persists a new unit for the owner.
func (s *UnitService) CreateUnit(ctx context.Context, ownerID string, req dto.CreateUnitRequest) (*domain.Unit, error) {
	kind := domain.UnitKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown unit kind %q", apperrors.ErrValidation, req.Kind)
	}
	currency := domain.CurrencyCode(req.RentCurrency)
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.RentCurrency)
	}
	if req.RentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: rent amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	unit := domain.Unit{
		UnitID:       uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Kind:         kind,
		RentAmount:   req.RentAmount,
		RentCurrency: currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	return &unit, nil
}

// ListUnits retrieves all units for the owner.
func (s *UnitService) ListUnits(ctx context.Context, ownerID string) ([]domain.Unit, error) {
	units, err := s.unitRepo.ListUnits(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	if units == nil {
		units = []domain.Unit{}
	}
	return units, nil
}

// DeleteUnit removes a unit and everything referencing it: tenants, utility
// charges, invoices and payments all go in the same transaction.
func (s *UnitService) DeleteUnit(ctx context.Context, ownerID, unitID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.unitRepo.FindUnitByID(ctx, ownerID, unitID); err != nil {
		return fmt.Errorf("failed to find unit for delete: %w", err)
	}

	if err := s.unitRepo.DeleteUnitCascade(ctx, ownerID, unitID); err != nil {
		logger.Error("Cascading unit delete failed", slog.String("unit_id", unitID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	logger.Info("Unit deleted with cascade", slog.String("unit_id", unitID))
	return nil
}
