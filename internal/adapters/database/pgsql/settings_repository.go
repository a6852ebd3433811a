package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// FindSettings retrieves the owner's settings row.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	query := `
		SELECT owner_id, base_currency, jod_to_ils_rate, rate_updated_at, created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE owner_id = $1;
	`
	var s domain.Settings
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&s.OwnerID,
		&s.BaseCurrency,
		&s.JODToILSRate,
		&s.RateUpdatedAt,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for owner %s: %w", ownerID, err)
	}
	return &s, nil
}

// SaveSettings inserts or updates the owner's settings row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	query := `
		INSERT INTO settings (owner_id, base_currency, jod_to_ils_rate, rate_updated_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id) DO UPDATE SET
			base_currency = EXCLUDED.base_currency,
			jod_to_ils_rate = EXCLUDED.jod_to_ils_rate,
			rate_updated_at = EXCLUDED.rate_updated_at,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		settings.OwnerID,
		settings.BaseCurrency,
		settings.JODToILSRate,
		settings.RateUpdatedAt,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for owner %s: %w", settings.OwnerID, err)
	}
	return nil
}

// UpdateRate persists a freshly fetched exchange rate and its fetch timestamp.
func (r *PgxSettingsRepository) UpdateRate(ctx context.Context, ownerID string, rate decimal.Decimal, fetchedAt time.Time) error {
	query := `
		UPDATE settings
		SET jod_to_ils_rate = $2, rate_updated_at = $3, last_updated_at = $3
		WHERE owner_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, ownerID, rate, fetchedAt)
	if err != nil {
		return fmt.Errorf("failed to update rate for owner %s: %w", ownerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListOwnerIDs returns the owner of every settings row.
func (r *PgxSettingsRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT owner_id FROM settings ORDER BY owner_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings owners: %w", err)
	}
	defer rows.Close()

	ownerIDs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings owners: %w", err)
	}
	return ownerIDs, nil
}
