package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// backupHandler handles full-state backup and restore.
type backupHandler struct {
	backupService portssvc.BackupSvc
}

func newBackupHandler(bs portssvc.BackupSvc) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers routes related to backups.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvc) {
	h := newBackupHandler(backupService)

	backups := rg.Group("/backups")
	{
		backups.POST("", h.createBackup)
		backups.GET("", h.listBackups)
		backups.POST("/:backupID/restore", h.restoreBackup)
	}
}

// createBackup godoc
// @Summary Create a backup
// @Description Stores a point-in-time snapshot of every collection the caller owns.
// @Tags backups
// @Produce json
// @Success 201 {object} dto.BackupResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Store unreachable, cannot snapshot"
// @Security BearerAuth
// @Router /backups [post]
func (h *backupHandler) createBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	backup, err := h.backupService.CreateBackup(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to create backup", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Failed to create backup"})
		return
	}

	logger.Info("Backup created", slog.String("backup_id", backup.BackupID))
	c.JSON(http.StatusCreated, dto.ToBackupResponse(backup))
}

// listBackups godoc
// @Summary List backups
// @Description Retrieves metadata for every stored backup, newest first.
// @Tags backups
// @Produce json
// @Success 200 {array} dto.BackupResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups [get]
func (h *backupHandler) listBackups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	backups, err := h.backupService.ListBackups(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list backups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list backups"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBackupResponses(backups))
}

// restoreBackup godoc
// @Summary Restore a backup
// @Description Replaces the caller's current data with the snapshot stored in the backup. The replacement is transactional.
// @Tags backups
// @Produce json
// @Param backupID path string true "Backup ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups/{backupID}/restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	backupID := c.Param("backupID")

	if err := h.backupService.RestoreBackup(c.Request.Context(), ownerID, backupID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Backup not found"})
		} else {
			logger.Error("Failed to restore backup", slog.String("backup_id", backupID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to restore backup"})
		}
		return
	}

	logger.Info("Backup restored", slog.String("backup_id", backupID))
	c.Status(http.StatusNoContent)
}
