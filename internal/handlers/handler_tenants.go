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

// tenantHandler handles HTTP requests related to tenants.
type tenantHandler struct {
	tenantService portssvc.TenantSvc
}

func newTenantHandler(ts portssvc.TenantSvc) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers routes related to tenants.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvc) {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.PATCH("/:tenantID/active", h.setTenantActive)
		tenants.DELETE("/:tenantID", h.deleteTenant)
	}
}

// createTenant godoc
// @Summary Register a tenant
// @Description Registers a tenant against an existing unit.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unit not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create tenant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create tenant"})
		}
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Description Retrieves every tenant belonging to the caller, active and inactive.
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tenants, err := h.tenantService.ListTenants(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list tenants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tenants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponses(tenants))
}

// setTenantActive godoc
// @Summary Activate or deactivate a tenant
// @Description Toggles the tenant's active flag. Inactive tenants are kept for history but excluded from invoice generation.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param active body dto.SetTenantActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenantID}/active [patch]
func (h *tenantHandler) setTenantActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	tenantID := c.Param("tenantID")

	var req dto.SetTenantActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.tenantService.SetTenantActive(c.Request.Context(), ownerID, tenantID, *req.Active); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tenant not found"})
		} else {
			logger.Error("Failed to update tenant active flag", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update tenant"})
		}
		return
	}

	logger.Info("Tenant active flag updated", slog.String("tenant_id", tenantID), slog.Bool("active", *req.Active))
	c.Status(http.StatusNoContent)
}

// deleteTenant godoc
// @Summary Delete a tenant
// @Description Deletes a tenant together with its invoices and payments.
// @Tags tenants
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenantID} [delete]
func (h *tenantHandler) deleteTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	tenantID := c.Param("tenantID")

	if err := h.tenantService.DeleteTenant(c.Request.Context(), ownerID, tenantID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tenant not found"})
		} else {
			logger.Error("Failed to delete tenant", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete tenant"})
		}
		return
	}

	logger.Info("Tenant deleted", slog.String("tenant_id", tenantID))
	c.Status(http.StatusNoContent)
}
