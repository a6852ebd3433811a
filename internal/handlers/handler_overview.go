package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
)

// overviewHandler serves the full-state snapshot loaded on app start.
type overviewHandler struct {
	overviewService portssvc.OverviewSvc
}

func newOverviewHandler(os portssvc.OverviewSvc) *overviewHandler {
	return &overviewHandler{overviewService: os}
}

func registerOverviewRoutes(rg *gin.RouterGroup, overviewService portssvc.OverviewSvc) {
	h := newOverviewHandler(overviewService)
	rg.GET("/overview", h.getOverview)
}

// getOverview godoc
// @Summary Get the full bookkeeping state
// @Description Retrieves every collection the caller owns in one response. When the store is unreachable and a cached snapshot exists, the snapshot is returned with fromCache set to true.
// @Tags overview
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Store unreachable and no cached snapshot"
// @Security BearerAuth
// @Router /overview [get]
func (h *overviewHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	snapshot, fromCache, err := h.overviewService.GetOverview(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to load overview", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Data store is unavailable"})
		return
	}

	if fromCache {
		logger.Warn("Serving overview from cache after store failure", slog.String("owner_id", ownerID))
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(snapshot, fromCache))
}
