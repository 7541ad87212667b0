package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BackupHandler handles data directory backups
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// DownloadURLResponse carries a short-lived download link
type DownloadURLResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}

// CreateBackup handles POST /api/v1/backups
func (h *BackupHandler) CreateBackup(c echo.Context) error {
	result, err := h.backupService.Run(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err, "create backup")
	}

	log.Info().Str("backup_id", result.ID).Int("documents", len(result.Documents)).Int64("bytes", result.Bytes).Msg("Backup created")
	return c.JSON(http.StatusCreated, result)
}

// ListBackups handles GET /api/v1/backups
func (h *BackupHandler) ListBackups(c echo.Context) error {
	backups, err := h.backupService.List(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err, "list backups")
	}
	return c.JSON(http.StatusOK, backups)
}

// GetDownloadURL handles GET /api/v1/backups/:id/:document
func (h *BackupHandler) GetDownloadURL(c echo.Context) error {
	url, err := h.backupService.DownloadURL(c.Request().Context(), c.Param("id"), c.Param("document"))
	if err != nil {
		return handleServiceError(c, err, "generate download URL")
	}

	return c.JSON(http.StatusOK, DownloadURLResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(service.BackupURLExpiry).UTC().Format(time.RFC3339),
	})
}
