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

// utilityHandler handles HTTP requests related to utility charges.
type utilityHandler struct {
	utilityService portssvc.UtilitySvc
}

func newUtilityHandler(us portssvc.UtilitySvc) *utilityHandler {
	return &utilityHandler{utilityService: us}
}

// registerUtilityRoutes registers routes related to utility charges.
func registerUtilityRoutes(rg *gin.RouterGroup, utilityService portssvc.UtilitySvc) {
	h := newUtilityHandler(utilityService)

	utilities := rg.Group("/utilities")
	{
		utilities.POST("", h.createCharge)
		utilities.GET("", h.listCharges)
		utilities.DELETE("/:chargeID", h.deleteCharge)
	}
}

// createCharge godoc
// @Summary Book a utility charge
// @Description Books a water or electricity charge against a unit for a billing period (YYYY-MM or YYYY).
// @Tags utilities
// @Accept json
// @Produce json
// @Param charge body dto.CreateUtilityChargeRequest true "Charge details"
// @Success 201 {object} dto.UtilityChargeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /utilities [post]
func (h *utilityHandler) createCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateUtilityChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	charge, err := h.utilityService.CreateUtilityCharge(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unit not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create utility charge", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create utility charge"})
		}
		return
	}

	logger.Info("Utility charge created", slog.String("charge_id", charge.ChargeID))
	c.JSON(http.StatusCreated, dto.ToUtilityChargeResponse(charge))
}

// listCharges godoc
// @Summary List utility charges
// @Description Retrieves every utility charge belonging to the caller.
// @Tags utilities
// @Produce json
// @Success 200 {array} dto.UtilityChargeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /utilities [get]
func (h *utilityHandler) listCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	charges, err := h.utilityService.ListUtilityCharges(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list utility charges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list utility charges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUtilityChargeResponses(charges))
}

// deleteCharge godoc
// @Summary Delete a utility charge
// @Description Deletes a single charge. Invoices already generated from it are unaffected.
// @Tags utilities
// @Produce json
// @Param chargeID path string true "Charge ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /utilities/{chargeID} [delete]
func (h *utilityHandler) deleteCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	chargeID := c.Param("chargeID")

	if err := h.utilityService.DeleteUtilityCharge(c.Request.Context(), ownerID, chargeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Utility charge not found"})
		} else {
			logger.Error("Failed to delete utility charge", slog.String("charge_id", chargeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete utility charge"})
		}
		return
	}

	logger.Info("Utility charge deleted", slog.String("charge_id", chargeID))
	c.Status(http.StatusNoContent)
}
