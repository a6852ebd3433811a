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

// settingsHandler handles the per-owner settings singleton and the manual
// exchange-rate refresh.
type settingsHandler struct {
	settingsService portssvc.SettingsSvc
	rateService     portssvc.RateSvc
}

func newSettingsHandler(ss portssvc.SettingsSvc, rs portssvc.RateSvc) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
		rateService:     rs,
	}
}

// registerSettingsRoutes registers routes related to owner settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc, rateService portssvc.RateSvc) {
	h := newSettingsHandler(settingsService, rateService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
		settings.POST("/rate/refresh", h.refreshRate)
	}
}

// getSettings godoc
// @Summary Get owner settings
// @Description Retrieves the caller's base currency and exchange rate. Defaults are returned before any settings have been saved.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to get settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update owner settings
// @Description Saves the base currency and the manually entered JOD to ILS rate.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update settings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update settings"})
		}
		return
	}

	logger.Info("Settings updated", slog.String("owner_id", ownerID))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// refreshRate godoc
// @Summary Refresh the exchange rate now
// @Description Fetches the current JOD to ILS rate from the provider and stores it, regardless of when the last fetch happened.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.RefreshRateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Rate provider unavailable"
// @Security BearerAuth
// @Router /settings/rate/refresh [post]
func (h *settingsHandler) refreshRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rate, fetchedAt, err := h.rateService.Refresh(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateProvider) {
			logger.Warn("Rate provider fetch failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Exchange-rate provider is unavailable"})
		} else {
			logger.Error("Failed to refresh rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh exchange rate"})
		}
		return
	}

	logger.Info("Exchange rate refreshed", slog.String("owner_id", ownerID), slog.String("rate", rate.String()))
	c.JSON(http.StatusOK, dto.RefreshRateResponse{Rate: rate, FetchedAt: fetchedAt})
}
