package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
)

type PgxUtilityRepository struct {
	BaseRepository
}

func newPgxUtilityRepository(pool *pgxpool.Pool) portsrepo.UtilityRepository {
	return &PgxUtilityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UtilityRepository = (*PgxUtilityRepository)(nil)

const utilityColumns = `charge_id, owner_id, unit_id, period, type, amount, currency, created_at, created_by, last_updated_at, last_updated_by`

// SaveUtilityCharge inserts a new charge.
func (r *PgxUtilityRepository) SaveUtilityCharge(ctx context.Context, charge domain.UtilityCharge) error {
	query := `
		INSERT INTO utilities (` + utilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		charge.ChargeID,
		charge.OwnerID,
		charge.UnitID,
		charge.Period,
		charge.Type,
		charge.Amount,
		charge.Currency,
		charge.CreatedAt,
		charge.CreatedBy,
		charge.LastUpdatedAt,
		charge.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save utility charge %s: %w", charge.ChargeID, err)
	}
	return nil
}

// ListUtilityCharges retrieves all charges for an owner.
func (r *PgxUtilityRepository) ListUtilityCharges(ctx context.Context, ownerID string) ([]domain.UtilityCharge, error) {
	query := `SELECT ` + utilityColumns + ` FROM utilities WHERE owner_id = $1 ORDER BY period, created_at;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query utility charges: %w", err)
	}
	defer rows.Close()

	charges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UtilityCharge, error) {
		var c domain.UtilityCharge
		err := row.Scan(
			&c.ChargeID,
			&c.OwnerID,
			&c.UnitID,
			&c.Period,
			&c.Type,
			&c.Amount,
			&c.Currency,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan utility charges: %w", err)
	}
	return charges, nil
}

// DeleteUtilityCharge deletes a single charge.
func (r *PgxUtilityRepository) DeleteUtilityCharge(ctx context.Context, ownerID, chargeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM utilities WHERE owner_id = $1 AND charge_id = $2;`, ownerID, chargeID)
	if err != nil {
		return fmt.Errorf("failed to delete utility charge %s: %w", chargeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
