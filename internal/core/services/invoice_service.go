package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// InvoiceService generates and manages invoices. Generation sums each unit's
// matching utility charges with its rent, all converted to the owner's base
// currency; the resulting figures are frozen on the invoice.
type InvoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepository
	unitRepo     portsrepo.UnitRepository
	tenantRepo   portsrepo.TenantRepository
	utilityRepo  portsrepo.UtilityRepository
	settingsRepo portsrepo.SettingsRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepository,
	unitRepo portsrepo.UnitRepository,
	tenantRepo portsrepo.TenantRepository,
	utilityRepo portsrepo.UtilityRepository,
	settingsRepo portsrepo.SettingsRepository,
) portssvc.InvoiceSvc {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		utilityRepo:  utilityRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.InvoiceSvc = (*InvoiceService)(nil)

// GenerateInvoices produces one invoice per eligible tenant: active, renting a
// unit whose kind matches the scope, and not filtered out by req.TenantID.
// Tenants already invoiced for the same scope and effective period are
// skipped, so re-running a generation is idempotent. Each invoice is persisted
// independently; a failed insert is reported in the response and does not
// abort the remaining tenants.
func (s *InvoiceService) GenerateInvoices(ctx context.Context, ownerID string, req dto.GenerateInvoicesRequest) (*dto.GenerateInvoicesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	scope := domain.BillingScope(req.Scope)
	if !scope.IsValid() {
		return nil, fmt.Errorf("%w: unknown billing scope %q", apperrors.ErrValidation, req.Scope)
	}
	period, err := domain.EffectivePeriod(scope, req.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	settings, err := s.loadSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.ListUnits(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	tenants, err := s.tenantRepo.ListTenants(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	charges, err := s.utilityRepo.ListUtilityCharges(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load utility charges: %w", err)
	}
	existing, err := s.invoiceRepo.ListInvoices(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing invoices: %w", err)
	}

	unitsByID := make(map[string]domain.Unit, len(units))
	for _, u := range units {
		unitsByID[u.UnitID] = u
	}

	alreadyInvoiced := make(map[string]bool, len(existing))
	for _, inv := range existing {
		if inv.Scope == scope && inv.Period == period {
			alreadyInvoiced[inv.TenantID] = true
		}
	}

	resp := &dto.GenerateInvoicesResponse{Invoices: []dto.InvoiceResponse{}}
	now := time.Now()

	for _, tenant := range tenants {
		if !tenant.Active {
			continue
		}
		if req.TenantID != "" && tenant.TenantID != req.TenantID {
			continue
		}
		unit, ok := unitsByID[tenant.UnitID]
		if !ok {
			continue
		}
		if unit.Kind.BillingScope() != scope {
			continue
		}
		if alreadyInvoiced[tenant.TenantID] {
			resp.Skipped = append(resp.Skipped, tenant.TenantID)
			continue
		}

		utilitiesBase := decimal.Zero
		for _, charge := range charges {
			if charge.UnitID != unit.UnitID {
				continue
			}
			if !domain.PeriodMatches(scope, period, charge.Period) {
				continue
			}
			utilitiesBase = utilitiesBase.Add(domain.ConvertToBase(charge.Amount, charge.Currency, *settings))
		}

		rentBase := domain.ConvertToBase(unit.RentAmount, unit.RentCurrency, *settings)

		invoice := domain.Invoice{
			InvoiceID:     uuid.NewString(),
			OwnerID:       ownerID,
			UnitID:        unit.UnitID,
			TenantID:      tenant.TenantID,
			Period:        period,
			Scope:         scope,
			RentBase:      rentBase,
			UtilitiesBase: utilitiesBase,
			TotalBase:     rentBase.Add(utilitiesBase),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     ownerID,
				LastUpdatedAt: now,
				LastUpdatedBy: ownerID,
			},
		}

		if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
			logger.Error("Failed to persist generated invoice",
				slog.String("tenant_id", tenant.TenantID),
				slog.String("period", period),
				slog.String("error", err.Error()))
			resp.Failed = append(resp.Failed, tenant.TenantID)
			continue
		}
		resp.Invoices = append(resp.Invoices, dto.ToInvoiceResponse(&invoice))
	}

	logger.Info("Invoice generation completed",
		slog.String("scope", string(scope)),
		slog.String("period", period),
		slog.Int("created", len(resp.Invoices)),
		slog.Int("skipped", len(resp.Skipped)),
		slog.Int("failed", len(resp.Failed)))
	return resp, nil
}

func (s *InvoiceService) loadSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Owners who never saved settings still generate invoices with
			// the defaults.
			def := domain.DefaultSettings(ownerID)
			return &def, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// ListInvoices retrieves all invoices for the owner, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

// DeleteInvoice removes a single invoice. Deletion is the only mutation an
// invoice supports.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, ownerID, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}
