package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
	"github.com/wsalem/rental_ledger_app/internal/platform/config"
)

// rateRefreshHandler serves the internal endpoint the scheduler hits to
// refresh every owner's exchange rate.
type rateRefreshHandler struct {
	rateService portssvc.RateSvc
}

// registerRateRefreshRoutes registers the shared-secret guarded refresh
// endpoint. The route 404s entirely when no secret is configured.
func registerRateRefreshRoutes(r *gin.Engine, cfg *config.Config, rateService portssvc.RateSvc) {
	h := &rateRefreshHandler{rateService: rateService}

	internal := r.Group("/internal",
		middleware.SharedSecretAuth(cfg.RateRefreshSecret),
		middleware.RateLimit(newIPRateLimiter("2-M")),
	)
	internal.POST("/rate-refresh", h.refreshAll)
}

// refreshAll fetches the provider rate once and persists it for every owner.
// Per-owner persistence failures are reported but do not fail the run.
func (h *rateRefreshHandler) refreshAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updated, failures := h.rateService.RefreshAll(c.Request.Context())

	failed := make(map[string]string, len(failures))
	for ownerID, err := range failures {
		failed[ownerID] = err.Error()
		logger.Warn("Rate refresh failed for owner", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
	}

	logger.Info("Scheduled rate refresh finished", slog.Int("updated", updated), slog.Int("failed", len(failed)))
	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"failed":  failed,
	})
}
