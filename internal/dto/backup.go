package dto

import (
	"time"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// BackupResponse defines metadata returned for a stored backup.
type BackupResponse struct {
	BackupID  string    `json:"backupID"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBackupResponse converts domain.Backup metadata to its DTO.
func ToBackupResponse(b *domain.Backup) BackupResponse {
	return BackupResponse{
		BackupID:  b.BackupID,
		CreatedAt: b.CreatedAt,
	}
}

// ToBackupResponses converts a slice of backups to DTOs.
func ToBackupResponses(backups []domain.Backup) []BackupResponse {
	out := make([]BackupResponse, len(backups))
	for i := range backups {
		out[i] = ToBackupResponse(&backups[i])
	}
	return out
}
