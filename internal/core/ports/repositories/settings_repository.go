package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// SettingsRepository defines persistence operations for the per-owner settings
// singleton.
type SettingsRepository interface {
	// FindSettings retrieves the settings row for an owner, or
	// apperrors.ErrNotFound when none has been saved yet.
	FindSettings(ctx context.Context, ownerID string) (*domain.Settings, error)

	// SaveSettings inserts or updates the owner's settings row.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// UpdateRate sets a freshly fetched exchange rate and its fetch timestamp,
	// leaving the rest of the row untouched.
	UpdateRate(ctx context.Context, ownerID string, rate decimal.Decimal, fetchedAt time.Time) error

	// ListOwnerIDs returns the owner of every settings row. Used by the
	// internal refresh endpoint to update all rates.
	ListOwnerIDs(ctx context.Context) ([]string, error)
}
