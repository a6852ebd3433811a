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

// PaymentService handles business logic for payments. Payments are free-
// standing entries, never reconciled against invoices.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepository
	tenantRepo  portsrepo.TenantRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, tenantRepo portsrepo.TenantRepository) portssvc.PaymentSvc {
	return &PaymentService{paymentRepo: paymentRepo, tenantRepo: tenantRepo}
}

var _ portssvc.PaymentSvc = (*PaymentService)(nil)

// CreatePayment persists a new payment after verifying the tenant reference.
func (s *PaymentService) CreatePayment(ctx context.Context, ownerID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, ownerID, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate tenant reference: %w", err)
	}
	if tenant.UnitID != req.UnitID {
		return nil, fmt.Errorf("%w: tenant does not rent the given unit", apperrors.ErrValidation)
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		OwnerID:   ownerID,
		TenantID:  req.TenantID,
		UnitID:    req.UnitID,
		Date:      req.Date,
		Amount:    req.Amount,
		Currency:  domain.CurrencyCode(req.Currency),
		Period:    req.Period,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &payment, nil
}

// ListPayments retrieves all payments for the owner, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, ownerID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

// DeletePayment removes a single payment.
func (s *PaymentService) DeletePayment(ctx context.Context, ownerID, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, ownerID, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
