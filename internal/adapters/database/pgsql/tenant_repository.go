package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
)

type PgxTenantRepository struct {
	BaseRepository
}

func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepository {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepository = (*PgxTenantRepository)(nil)

const tenantColumns = `tenant_id, owner_id, name, phone, unit_id, start_date, active, created_at, created_by, last_updated_at, last_updated_by`

// SaveTenant inserts a new tenant.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		tenant.TenantID,
		tenant.OwnerID,
		tenant.Name,
		tenant.Phone,
		tenant.UnitID,
		tenant.StartDate,
		tenant.Active,
		tenant.CreatedAt,
		tenant.CreatedBy,
		tenant.LastUpdatedAt,
		tenant.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tenant %s: %w", tenant.TenantID, err)
	}
	return nil
}

func scanTenant(row pgx.CollectableRow) (domain.Tenant, error) {
	var t domain.Tenant
	err := row.Scan(
		&t.TenantID,
		&t.OwnerID,
		&t.Name,
		&t.Phone,
		&t.UnitID,
		&t.StartDate,
		&t.Active,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// FindTenantByID retrieves a tenant owned by ownerID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, ownerID, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE owner_id = $1 AND tenant_id = $2;`
	rows, err := r.Pool.Query(ctx, query, ownerID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant %s: %w", tenantID, err)
	}
	tenant, err := pgx.CollectOneRow(rows, scanTenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan tenant %s: %w", tenantID, err)
	}
	return &tenant, nil
}

// ListTenants retrieves all tenants for an owner.
func (r *PgxTenantRepository) ListTenants(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE owner_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}
	defer rows.Close()

	tenants, err := pgx.CollectRows(rows, scanTenant)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenants: %w", err)
	}
	return tenants, nil
}

// SetTenantActive toggles the active flag on a tenant.
func (r *PgxTenantRepository) SetTenantActive(ctx context.Context, ownerID, tenantID string, active bool, updatedBy string) error {
	query := `
		UPDATE tenants
		SET active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE owner_id = $1 AND tenant_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, ownerID, tenantID, active, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTenantCascade deletes the tenant and its invoices and payments in one
// transaction.
func (r *PgxTenantRepository) DeleteTenantCascade(ctx context.Context, ownerID, tenantID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	statements := []string{
		`DELETE FROM payments WHERE owner_id = $1 AND tenant_id = $2;`,
		`DELETE FROM invoices WHERE owner_id = $1 AND tenant_id = $2;`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, ownerID, tenantID); err != nil {
			return fmt.Errorf("failed cascading delete for tenant %s: %w", tenantID, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM tenants WHERE owner_id = $1 AND tenant_id = $2;`, ownerID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant %s: %w", tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tenant delete: %w", err)
	}
	return nil
}
