package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
)

// SettingsService manages the per-owner settings singleton.
type SettingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvc {
	return &SettingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvc = (*SettingsService)(nil)

// GetSettings returns the owner's saved settings, or the defaults (base JOD,
// rate 5) when none exist yet.
func (s *SettingsService) GetSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := domain.DefaultSettings(ownerID)
			return &def, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and saves the base currency and manual rate.
func (s *SettingsService) UpdateSettings(ctx context.Context, ownerID string, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if !req.JODToILSRate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	base := domain.CurrencyCode(req.BaseCurrency)
	if !base.IsValid() {
		return nil, fmt.Errorf("%w: unsupported base currency %q", apperrors.ErrValidation, req.BaseCurrency)
	}

	existing, err := s.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings := domain.Settings{
		OwnerID:       ownerID,
		BaseCurrency:  base,
		JODToILSRate:  req.JODToILSRate,
		RateUpdatedAt: existing.RateUpdatedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = ownerID
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}
