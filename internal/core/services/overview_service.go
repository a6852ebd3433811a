package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// OverviewService assembles the owner's full state for initial load. Every
// successful load is cached in-process; when the store becomes unreachable the
// last known snapshot is served instead, flagged as coming from the cache.
type OverviewService struct {
	settingsSvc portssvc.SettingsSvc
	rateSvc     portssvc.RateSvc
	unitRepo    portsrepo.UnitRepository
	tenantRepo  portsrepo.TenantRepository
	utilityRepo portsrepo.UtilityRepository
	invoiceRepo portsrepo.InvoiceRepository
	paymentRepo portsrepo.PaymentRepository

	mu    sync.RWMutex
	cache map[string]domain.Snapshot // keyed by owner ID
}

// NewOverviewService creates a new OverviewService. rateSvc may be nil, in
// which case no passive rate refresh is attempted on load.
func NewOverviewService(
	settingsSvc portssvc.SettingsSvc,
	rateSvc portssvc.RateSvc,
	unitRepo portsrepo.UnitRepository,
	tenantRepo portsrepo.TenantRepository,
	utilityRepo portsrepo.UtilityRepository,
	invoiceRepo portsrepo.InvoiceRepository,
	paymentRepo portsrepo.PaymentRepository,
) *OverviewService {
	return &OverviewService{
		settingsSvc: settingsSvc,
		rateSvc:     rateSvc,
		unitRepo:    unitRepo,
		tenantRepo:  tenantRepo,
		utilityRepo: utilityRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		cache:       make(map[string]domain.Snapshot),
	}
}

var _ portssvc.OverviewSvc = (*OverviewService)(nil)

// GetOverview loads every collection for the owner. The passive rate refresh
// runs first, best-effort: its failures are logged and swallowed so a dead
// provider never blocks the initial load.
func (s *OverviewService) GetOverview(ctx context.Context, ownerID string) (*domain.Snapshot, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.rateSvc != nil {
		if _, err := s.rateSvc.RefreshIfStale(ctx, ownerID); err != nil {
			logger.Warn("Passive rate refresh failed", slog.String("error", err.Error()))
		}
	}

	snapshot, err := s.load(ctx, ownerID)
	if err != nil {
		s.mu.RLock()
		cached, ok := s.cache[ownerID]
		s.mu.RUnlock()
		if ok {
			logger.Warn("Serving overview from in-process cache after store failure", slog.String("error", err.Error()))
			return &cached, true, nil
		}
		return nil, false, fmt.Errorf("failed to load overview and no cached snapshot exists: %w", err)
	}

	s.mu.Lock()
	s.cache[ownerID] = *snapshot
	s.mu.Unlock()

	return snapshot, false, nil
}

func (s *OverviewService) load(ctx context.Context, ownerID string) (*domain.Snapshot, error) {
	settings, err := s.settingsSvc.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.ListUnits(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.ListTenants(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	utilities, err := s.utilityRepo.ListUtilityCharges(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPayments(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Settings:  *settings,
		Units:     units,
		Tenants:   tenants,
		Utilities: utilities,
		Invoices:  invoices,
		Payments:  payments,
	}, nil
}
