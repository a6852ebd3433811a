package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// RateFetcher fetches the current base→quote exchange rate from the external
// provider. Implemented by fxrate.Client.
type RateFetcher interface {
	LatestRate(ctx context.Context, base, quote string) (decimal.Decimal, error)
}

// RateService implements the exchange-rate refresh policy: a manual refresh is
// always performed; the passive path refreshes only once per staleness window.
type RateService struct {
	settingsRepo portsrepo.SettingsRepository
	fetcher      RateFetcher
	staleAfter   time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

// NewRateService creates a new RateService. staleAfter is the window within
// which a passive refresh is a no-op; 24h in production.
func NewRateService(settingsRepo portsrepo.SettingsRepository, fetcher RateFetcher, staleAfter time.Duration) *RateService {
	return &RateService{
		settingsRepo: settingsRepo,
		fetcher:      fetcher,
		staleAfter:   staleAfter,
		now:          time.Now,
	}
}

var _ portssvc.RateSvc = (*RateService)(nil)

// Refresh unconditionally fetches and persists the JOD→ILS rate for an owner.
func (s *RateService) Refresh(ctx context.Context, ownerID string) (decimal.Decimal, time.Time, error) {
	rate, err := s.fetcher.LatestRate(ctx, string(domain.CurrencyJOD), string(domain.CurrencyILS))
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to fetch rate: %w", err)
	}

	fetchedAt := s.now()
	if err := s.settingsRepo.UpdateRate(ctx, ownerID, rate, fetchedAt); err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to persist fetched rate: %w", err)
	}
	return rate, fetchedAt, nil
}

// RefreshIfStale refreshes only when the owner has never fetched or the last
// fetch is older than the staleness window. Owners without a settings row are
// left alone; they get defaults until they save settings.
func (s *RateService) RefreshIfStale(ctx context.Context, ownerID string) (bool, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to load settings for staleness check: %w", err)
	}

	if settings.RateUpdatedAt != nil && s.now().Sub(*settings.RateUpdatedAt) <= s.staleAfter {
		return false, nil
	}

	if _, _, err := s.Refresh(ctx, ownerID); err != nil {
		return false, err
	}
	return true, nil
}

// RefreshAll refreshes every owner's rate. One provider fetch serves all
// owners; persistence failures are collected per owner rather than aborting
// the sweep.
func (s *RateService) RefreshAll(ctx context.Context) (int, map[string]error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	failures := make(map[string]error)

	ownerIDs, err := s.settingsRepo.ListOwnerIDs(ctx)
	if err != nil {
		failures[""] = fmt.Errorf("failed to list owners: %w", err)
		return 0, failures
	}

	rate, err := s.fetcher.LatestRate(ctx, string(domain.CurrencyJOD), string(domain.CurrencyILS))
	if err != nil {
		failures[""] = fmt.Errorf("failed to fetch rate: %w", err)
		return 0, failures
	}

	fetchedAt := s.now()
	updated := 0
	for _, ownerID := range ownerIDs {
		if err := s.settingsRepo.UpdateRate(ctx, ownerID, rate, fetchedAt); err != nil {
			logger.Error("Failed to persist refreshed rate", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
			failures[ownerID] = err
			continue
		}
		updated++
	}
	return updated, failures
}
