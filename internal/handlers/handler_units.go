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

// unitHandler handles HTTP requests related to rental units.
type unitHandler struct {
	unitService portssvc.UnitSvc
}

func newUnitHandler(us portssvc.UnitSvc) *unitHandler {
	return &unitHandler{unitService: us}
}

// registerUnitRoutes registers routes related to units.
func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvc) {
	h := newUnitHandler(unitService)

	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.DELETE("/:unitID", h.deleteUnit)
	}
}

// createUnit godoc
// @Summary Create a rental unit
// @Description Adds a new apartment or shop. The kind fixes the billing scope: apartments are invoiced monthly, shops yearly.
// @Tags units
// @Accept json
// @Produce json
// @Param unit body dto.CreateUnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /units [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create unit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create unit"})
		}
		return
	}

	logger.Info("Unit created", slog.String("unit_id", unit.UnitID))
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List units
// @Description Retrieves every unit owned by the caller.
// @Tags units
// @Produce json
// @Success 200 {array} dto.UnitResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /units [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	units, err := h.unitService.ListUnits(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list units", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list units"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitResponses(units))
}

// deleteUnit godoc
// @Summary Delete a unit
// @Description Deletes a unit together with its tenants, utility charges, invoices and payments.
// @Tags units
// @Produce json
// @Param unitID path string true "Unit ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /units/{unitID} [delete]
func (h *unitHandler) deleteUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID := c.Param("unitID")

	if err := h.unitService.DeleteUnit(c.Request.Context(), ownerID, unitID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unit not found"})
		} else {
			logger.Error("Failed to delete unit", slog.String("unit_id", unitID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete unit"})
		}
		return
	}

	logger.Info("Unit deleted", slog.String("unit_id", unitID))
	c.Status(http.StatusNoContent)
}
