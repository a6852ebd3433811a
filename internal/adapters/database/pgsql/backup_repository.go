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

type PgxBackupRepository struct {
	BaseRepository
}

func newPgxBackupRepository(pool *pgxpool.Pool) portsrepo.BackupRepository {
	return &PgxBackupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BackupRepository = (*PgxBackupRepository)(nil)

// SaveBackup inserts a new snapshot row. The snapshot is stored as JSONB, pgx
// handles the marshaling of the struct.
func (r *PgxBackupRepository) SaveBackup(ctx context.Context, backup domain.Backup) error {
	query := `
		INSERT INTO backups (backup_id, owner_id, snapshot, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		backup.BackupID,
		backup.OwnerID,
		backup.Snapshot,
		backup.CreatedAt,
		backup.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save backup %s: %w", backup.BackupID, err)
	}
	return nil
}

// FindBackupByID retrieves one backup including its snapshot payload.
func (r *PgxBackupRepository) FindBackupByID(ctx context.Context, ownerID, backupID string) (*domain.Backup, error) {
	query := `SELECT backup_id, owner_id, snapshot, created_at, created_by FROM backups WHERE owner_id = $1 AND backup_id = $2;`
	row := r.Pool.QueryRow(ctx, query, ownerID, backupID)

	var b domain.Backup
	err := row.Scan(&b.BackupID, &b.OwnerID, &b.Snapshot, &b.CreatedAt, &b.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find backup %s: %w", backupID, err)
	}
	return &b, nil
}

// ListBackups retrieves backup metadata for an owner, newest first. Snapshot
// payloads can be large so they are not loaded here.
func (r *PgxBackupRepository) ListBackups(ctx context.Context, ownerID string) ([]domain.Backup, error) {
	query := `SELECT backup_id, owner_id, created_at, created_by FROM backups WHERE owner_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query backups: %w", err)
	}
	defer rows.Close()

	backups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Backup, error) {
		var b domain.Backup
		err := row.Scan(&b.BackupID, &b.OwnerID, &b.CreatedAt, &b.CreatedBy)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan backups: %w", err)
	}
	return backups, nil
}

// RestoreBackup replaces the owner's bookkeeping rows with the snapshot
// contents in a single transaction. Deletion order respects foreign keys.
func (r *PgxBackupRepository) RestoreBackup(ctx context.Context, ownerID string, snapshot domain.Snapshot) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin restore transaction: %w", err)
	}
	defer r.Rollback(ctx, tx)

	for _, table := range []string{"payments", "invoices", "utilities", "tenants", "units"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE owner_id = $1;`, table), ownerID); err != nil {
			return fmt.Errorf("failed to clear %s for restore: %w", table, err)
		}
	}

	settingsQuery := `
		INSERT INTO settings (owner_id, base_currency, jod_to_ils_rate, rate_updated_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id) DO UPDATE SET
			base_currency = EXCLUDED.base_currency,
			jod_to_ils_rate = EXCLUDED.jod_to_ils_rate,
			rate_updated_at = EXCLUDED.rate_updated_at,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	s := snapshot.Settings
	if _, err := tx.Exec(ctx, settingsQuery,
		ownerID, s.BaseCurrency, s.JODToILSRate, s.RateUpdatedAt,
		s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}

	for _, u := range snapshot.Units {
		if _, err := tx.Exec(ctx,
			`INSERT INTO units (`+unitColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
			u.UnitID, ownerID, u.Name, u.Kind, u.RentAmount, u.RentCurrency,
			u.CreatedAt, u.CreatedBy, u.LastUpdatedAt, u.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to restore unit %s: %w", u.UnitID, err)
		}
	}

	for _, t := range snapshot.Tenants {
		if _, err := tx.Exec(ctx,
			`INSERT INTO tenants (`+tenantColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			t.TenantID, ownerID, t.Name, t.Phone, t.UnitID, t.StartDate, t.Active,
			t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to restore tenant %s: %w", t.TenantID, err)
		}
	}

	for _, c := range snapshot.Utilities {
		if _, err := tx.Exec(ctx,
			`INSERT INTO utilities (`+utilityColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			c.ChargeID, ownerID, c.UnitID, c.Period, c.Type, c.Amount, c.Currency,
			c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to restore utility charge %s: %w", c.ChargeID, err)
		}
	}

	for _, inv := range snapshot.Invoices {
		if _, err := tx.Exec(ctx,
			`INSERT INTO invoices (`+invoiceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
			inv.InvoiceID, ownerID, inv.UnitID, inv.TenantID, inv.Period, inv.Scope,
			inv.RentBase, inv.UtilitiesBase, inv.TotalBase,
			inv.CreatedAt, inv.CreatedBy, inv.LastUpdatedAt, inv.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to restore invoice %s: %w", inv.InvoiceID, err)
		}
	}

	for _, p := range snapshot.Payments {
		if _, err := tx.Exec(ctx,
			`INSERT INTO payments (`+paymentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
			p.PaymentID, ownerID, p.TenantID, p.UnitID, p.Date, p.Amount, p.Currency, p.Period, p.Note,
			p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to restore payment %s: %w", p.PaymentID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit restore transaction: %w", err)
	}
	return nil
}
