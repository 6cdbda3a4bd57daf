package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/harvestive/harvestive-backend/internal/apperrors"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
	"github.com/harvestive/harvestive-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// methodHandler handles payment rail endpoints. The public listings only show
// enabled rails; the admin CRUD routes are registered separately.
type methodHandler struct {
	methodService portssvc.MethodSvcFacade
}

// newMethodHandler creates a new methodHandler.
func newMethodHandler(ms portssvc.MethodSvcFacade) *methodHandler {
	return &methodHandler{
		methodService: ms,
	}
}

// listDepositMethods godoc
// @Summary List enabled deposit methods
// @Description Returns the deposit rails users can currently pay through.
// @Tags methods
// @Produce json
// @Success 200 {object} dto.ListDepositMethodsResponse
// @Failure 500 {object} map[string]string "Failed to list deposit methods"
// @Router /methods/deposit [get]
func (h *methodHandler) listDepositMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methods, err := h.methodService.ListDepositMethods(c.Request.Context(), true)
	if err != nil {
		logger.Error("Failed to list deposit methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposit methods"})
		return
	}
	c.JSON(http.StatusOK, dto.ListDepositMethodsResponse{Methods: methods})
}

// listWithdrawMethods godoc
// @Summary List enabled withdraw methods
// @Description Returns the payout rails users can currently withdraw to.
// @Tags methods
// @Produce json
// @Success 200 {object} dto.ListWithdrawMethodsResponse
// @Failure 500 {object} map[string]string "Failed to list withdraw methods"
// @Router /methods/withdraw [get]
func (h *methodHandler) listWithdrawMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methods, err := h.methodService.ListWithdrawMethods(c.Request.Context(), true)
	if err != nil {
		logger.Error("Failed to list withdraw methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdraw methods"})
		return
	}
	c.JSON(http.StatusOK, dto.ListWithdrawMethodsResponse{Methods: methods})
}

// listAllDepositMethods godoc
// @Summary List all deposit methods (admin)
// @Description Returns every deposit rail, disabled ones included.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListDepositMethodsResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to list deposit methods"
// @Security BearerAuth
// @Router /admin/methods/deposit [get]
func (h *methodHandler) listAllDepositMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methods, err := h.methodService.ListDepositMethods(c.Request.Context(), false)
	if err != nil {
		logger.Error("Failed to list deposit methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposit methods"})
		return
	}
	c.JSON(http.StatusOK, dto.ListDepositMethodsResponse{Methods: methods})
}

// createDepositMethod godoc
// @Summary Create a deposit method (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param method body dto.CreateDepositMethodRequest true "Method details"
// @Success 201 {object} domain.DepositMethod
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to create deposit method"
// @Security BearerAuth
// @Router /admin/methods/deposit [post]
func (h *methodHandler) createDepositMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepositMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.methodService.CreateDepositMethod(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create deposit method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deposit method"})
		return
	}
	c.JSON(http.StatusCreated, method)
}

// updateDepositMethod godoc
// @Summary Update a deposit method (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param methodID path string true "Method ID"
// @Param method body dto.UpdateDepositMethodRequest true "Fields to change"
// @Success 200 {object} domain.DepositMethod
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to update deposit method"
// @Security BearerAuth
// @Router /admin/methods/deposit/{methodID} [put]
func (h *methodHandler) updateDepositMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")
	var req dto.UpdateDepositMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.methodService.UpdateDepositMethod(c.Request.Context(), methodID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
			return
		}
		logger.Error("Failed to update deposit method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deposit method"})
		return
	}
	c.JSON(http.StatusOK, method)
}

// deleteDepositMethod godoc
// @Summary Delete a deposit method (admin)
// @Tags admin
// @Produce json
// @Param methodID path string true "Method ID"
// @Success 204 "Method deleted"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to delete deposit method"
// @Security BearerAuth
// @Router /admin/methods/deposit/{methodID} [delete]
func (h *methodHandler) deleteDepositMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")
	if err := h.methodService.DeleteDepositMethod(c.Request.Context(), methodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
			return
		}
		logger.Error("Failed to delete deposit method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deposit method"})
		return
	}
	c.Status(http.StatusNoContent)
}

// listAllWithdrawMethods godoc
// @Summary List all withdraw methods (admin)
// @Description Returns every payout rail, disabled ones included.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListWithdrawMethodsResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to list withdraw methods"
// @Security BearerAuth
// @Router /admin/methods/withdraw [get]
func (h *methodHandler) listAllWithdrawMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methods, err := h.methodService.ListWithdrawMethods(c.Request.Context(), false)
	if err != nil {
		logger.Error("Failed to list withdraw methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdraw methods"})
		return
	}
	c.JSON(http.StatusOK, dto.ListWithdrawMethodsResponse{Methods: methods})
}

// createWithdrawMethod godoc
// @Summary Create a withdraw method (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param method body dto.CreateWithdrawMethodRequest true "Method details"
// @Success 201 {object} domain.WithdrawMethod
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to create withdraw method"
// @Security BearerAuth
// @Router /admin/methods/withdraw [post]
func (h *methodHandler) createWithdrawMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWithdrawMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.methodService.CreateWithdrawMethod(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create withdraw method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create withdraw method"})
		return
	}
	c.JSON(http.StatusCreated, method)
}

// updateWithdrawMethod godoc
// @Summary Update a withdraw method (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param methodID path string true "Method ID"
// @Param method body dto.UpdateWithdrawMethodRequest true "Fields to change"
// @Success 200 {object} domain.WithdrawMethod
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to update withdraw method"
// @Security BearerAuth
// @Router /admin/methods/withdraw/{methodID} [put]
func (h *methodHandler) updateWithdrawMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")
	var req dto.UpdateWithdrawMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.methodService.UpdateWithdrawMethod(c.Request.Context(), methodID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
			return
		}
		logger.Error("Failed to update withdraw method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update withdraw method"})
		return
	}
	c.JSON(http.StatusOK, method)
}

// deleteWithdrawMethod godoc
// @Summary Delete a withdraw method (admin)
// @Tags admin
// @Produce json
// @Param methodID path string true "Method ID"
// @Success 204 "Method deleted"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Method not found"
// @Failure 500 {object} map[string]string "Failed to delete withdraw method"
// @Security BearerAuth
// @Router /admin/methods/withdraw/{methodID} [delete]
func (h *methodHandler) deleteWithdrawMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methodID := c.Param("methodID")
	if err := h.methodService.DeleteWithdrawMethod(c.Request.Context(), methodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method not found"})
			return
		}
		logger.Error("Failed to delete withdraw method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete withdraw method"})
		return
	}
	c.Status(http.StatusNoContent)
}
