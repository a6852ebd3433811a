package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
)

type PgxUnitRepository struct {
	BaseRepository
}

func newPgxUnitRepository(pool *pgxpool.Pool) portsrepo.UnitRepository {
	return &PgxUnitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepository = (*PgxUnitRepository)(nil)

const unitColumns = `unit_id, owner_id, name, kind, rent_amount, rent_currency, created_at, created_by, last_updated_at, last_updated_by`

// SaveUnit inserts a new unit.
func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		unit.UnitID,
		unit.OwnerID,
		unit.Name,
		unit.Kind,
		unit.RentAmount,
		unit.RentCurrency,
		unit.CreatedAt,
		unit.CreatedBy,
		unit.LastUpdatedAt,
		unit.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save unit %s: %w", unit.UnitID, err)
	}
	return nil
}

func scanUnit(row pgx.CollectableRow) (domain.Unit, error) {
	var u domain.Unit
	err := row.Scan(
		&u.UnitID,
		&u.OwnerID,
		&u.Name,
		&u.Kind,
		&u.RentAmount,
		&u.RentCurrency,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	return u, err
}

// FindUnitByID retrieves a unit owned by ownerID.
func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, ownerID, unitID string) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE owner_id = $1 AND unit_id = $2;`
	rows, err := r.Pool.Query(ctx, query, ownerID, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit %s: %w", unitID, err)
	}
	unit, err := pgx.CollectOneRow(rows, scanUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan unit %s: %w", unitID, err)
	}
	return &unit, nil
}

// ListUnits retrieves all units for an owner.
func (r *PgxUnitRepository) ListUnits(ctx context.Context, ownerID string) ([]domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE owner_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	units, err := pgx.CollectRows(rows, scanUnit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan units: %w", err)
	}
	return units, nil
}

// DeleteUnitCascade deletes the unit and every dependent row in one
// transaction: payments, invoices, utility charges and tenants referencing
// the unit all go with it, so no remote orphans survive a parent delete.
func (r *PgxUnitRepository) DeleteUnitCascade(ctx context.Context, ownerID, unitID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	statements := []string{
		`DELETE FROM payments WHERE owner_id = $1 AND unit_id = $2;`,
		`DELETE FROM invoices WHERE owner_id = $1 AND unit_id = $2;`,
		`DELETE FROM utilities WHERE owner_id = $1 AND unit_id = $2;`,
		`DELETE FROM tenants WHERE owner_id = $1 AND unit_id = $2;`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, ownerID, unitID); err != nil {
			return fmt.Errorf("failed cascading delete for unit %s: %w", unitID, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM units WHERE owner_id = $1 AND unit_id = $2;`, ownerID, unitID)
	if err != nil {
		return fmt.Errorf("failed to delete unit %s: %w", unitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit unit delete: %w", err)
	}
	return nil
}
