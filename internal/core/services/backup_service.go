package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// BackupService snapshots and restores an owner's full state.
type BackupService struct {
	backupRepo  portsrepo.BackupRepository
	overviewSvc portssvc.OverviewSvc
}

// NewBackupService creates a new BackupService.
func NewBackupService(backupRepo portsrepo.BackupRepository, overviewSvc portssvc.OverviewSvc) portssvc.BackupSvc {
	return &BackupService{backupRepo: backupRepo, overviewSvc: overviewSvc}
}

var _ portssvc.BackupSvc = (*BackupService)(nil)

// CreateBackup snapshots the owner's current collections into the backups
// table. A snapshot served from the fallback cache is refused: backing up
// possibly stale data would silently overwrite good history on restore.
func (s *BackupService) CreateBackup(ctx context.Context, ownerID string) (*domain.Backup, error) {
	snapshot, fromCache, err := s.overviewSvc.GetOverview(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble snapshot: %w", err)
	}
	if fromCache {
		return nil, fmt.Errorf("store unavailable, refusing to back up cached snapshot")
	}

	backup := domain.Backup{
		BackupID:  uuid.NewString(),
		OwnerID:   ownerID,
		Snapshot:  *snapshot,
		CreatedAt: time.Now(),
		CreatedBy: ownerID,
	}

	if err := s.backupRepo.SaveBackup(ctx, backup); err != nil {
		return nil, fmt.Errorf("failed to save backup: %w", err)
	}
	return &backup, nil
}

// ListBackups retrieves backup metadata for the owner, newest first.
func (s *BackupService) ListBackups(ctx context.Context, ownerID string) ([]domain.Backup, error) {
	backups, err := s.backupRepo.ListBackups(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	if backups == nil {
		backups = []domain.Backup{}
	}
	return backups, nil
}

// RestoreBackup replaces the owner's current collections with the snapshot
// stored under backupID. The replacement is transactional in the repository.
func (s *BackupService) RestoreBackup(ctx context.Context, ownerID, backupID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	backup, err := s.backupRepo.FindBackupByID(ctx, ownerID, backupID)
	if err != nil {
		return fmt.Errorf("failed to load backup: %w", err)
	}

	if err := s.backupRepo.RestoreBackup(ctx, ownerID, backup.Snapshot); err != nil {
		logger.Error("Backup restore failed", slog.String("backup_id", backupID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	logger.Info("Backup restored", slog.String("backup_id", backupID))
	return nil
}
