package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
)

// UtilityService handles business logic for utility charges.
type UtilityService struct {
	utilityRepo portsrepo.UtilityRepository
	unitRepo    portsrepo.UnitRepository
}

// NewUtilityService creates a new UtilityService.
func NewUtilityService(utilityRepo portsrepo.UtilityRepository, unitRepo portsrepo.UnitRepository) portssvc.UtilitySvc {
	return &UtilityService{utilityRepo: utilityRepo, unitRepo: unitRepo}
}

var _ portssvc.UtilitySvc = (*UtilityService)(nil)

// CreateUtilityCharge persists a new charge after validating the period form
// and the unit reference.
func (s *UtilityService) CreateUtilityCharge(ctx context.Context, ownerID string, req dto.CreateUtilityChargeRequest) (*domain.UtilityCharge, error) {
	if !domain.IsMonthlyPeriod(req.Period) && !domain.IsYearlyPeriod(req.Period) {
		return nil, fmt.Errorf("%w: period must be YYYY-MM or YYYY, got %q", apperrors.ErrValidation, req.Period)
	}
	utilityType := domain.UtilityType(req.Type)
	if !utilityType.IsValid() {
		return nil, fmt.Errorf("%w: unknown utility type %q", apperrors.ErrValidation, req.Type)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: charge amount cannot be negative", apperrors.ErrValidation)
	}
	if _, err := s.unitRepo.FindUnitByID(ctx, ownerID, req.UnitID); err != nil {
		return nil, fmt.Errorf("failed to validate unit reference: %w", err)
	}

	now := time.Now()
	charge := domain.UtilityCharge{
		ChargeID: uuid.NewString(),
		OwnerID:  ownerID,
		UnitID:   req.UnitID,
		Period:   req.Period,
		Type:     utilityType,
		Amount:   req.Amount,
		Currency: domain.CurrencyCode(req.Currency),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.utilityRepo.SaveUtilityCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("failed to create utility charge: %w", err)
	}
	return &charge, nil
}

// ListUtilityCharges retrieves all charges for the owner.
func (s *UtilityService) ListUtilityCharges(ctx context.Context, ownerID string) ([]domain.UtilityCharge, error) {
	charges, err := s.utilityRepo.ListUtilityCharges(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list utility charges: %w", err)
	}
	if charges == nil {
		charges = []domain.UtilityCharge{}
	}
	return charges, nil
}

// DeleteUtilityCharge removes a single charge.
func (s *UtilityService) DeleteUtilityCharge(ctx context.Context, ownerID, chargeID string) error {
	if err := s.utilityRepo.DeleteUtilityCharge(ctx, ownerID, chargeID); err != nil {
		return fmt.Errorf("failed to delete utility charge: %w", err)
	}
	return nil
}
