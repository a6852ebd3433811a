package repositories

import (
	"context"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// BackupRepository defines persistence operations for full-state backups.
type BackupRepository interface {
	// SaveBackup inserts a new snapshot row.
	SaveBackup(ctx context.Context, backup domain.Backup) error

	// FindBackupByID retrieves one backup including its snapshot payload.
	FindBackupByID(ctx context.Context, ownerID, backupID string) (*domain.Backup, error)

	// ListBackups retrieves backup metadata for an owner, newest first. The
	// snapshot payloads are not loaded.
	ListBackups(ctx context.Context, ownerID string) ([]domain.Backup, error)

	// RestoreBackup transactionally replaces the owner's units, tenants,
	// utility charges, invoices and payments with the snapshot contents.
	RestoreBackup(ctx context.Context, ownerID string, snapshot domain.Snapshot) error
}
