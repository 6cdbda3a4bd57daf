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

// adminHandler handles the admin console endpoints: user management, funding
// review and the platform stats view.
type adminHandler struct {
	userService      portssvc.UserSvcFacade
	fundingService   portssvc.FundingSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(us portssvc.UserSvcFacade, fs portssvc.FundingSvcFacade, rs portssvc.ReportingSvcFacade) *adminHandler {
	return &adminHandler{
		userService:      us,
		fundingService:   fs,
		reportingService: rs,
	}
}

// registerAdminRoutes registers the admin console routes. All of them require
// an admin token on top of the group's auth middleware.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services.User, services.Funding, services.Reporting)
	mh := newMethodHandler(services.Method)

	admin := rg.Group("/admin", middleware.AdminOnly())
	{
		admin.GET("/users", h.listUsers)
		admin.PATCH("/users/:userID/block", h.blockUser)
		admin.DELETE("/users/:userID", h.deleteUser)

		admin.GET("/deposits", h.listAllDeposits)
		admin.POST("/deposits/:depositID/approve", h.approveDeposit)
		admin.POST("/deposits/:depositID/reject", h.rejectDeposit)

		admin.GET("/withdrawals", h.listAllWithdrawals)
		admin.POST("/withdrawals/:withdrawalID/approve", h.approveWithdrawal)
		admin.POST("/withdrawals/:withdrawalID/reject", h.rejectWithdrawal)

		admin.GET("/methods/deposit", mh.listAllDepositMethods)
		admin.POST("/methods/deposit", mh.createDepositMethod)
		admin.PUT("/methods/deposit/:methodID", mh.updateDepositMethod)
		admin.DELETE("/methods/deposit/:methodID", mh.deleteDepositMethod)

		admin.GET("/methods/withdraw", mh.listAllWithdrawMethods)
		admin.POST("/methods/withdraw", mh.createWithdrawMethod)
		admin.PUT("/methods/withdraw/:methodID", mh.updateWithdrawMethod)
		admin.DELETE("/methods/withdraw/:methodID", mh.deleteWithdrawMethod)

		admin.GET("/stats", h.getPlatformStats)
	}
}

// listUsers godoc
// @Summary List users (admin)
// @Description Returns a paginated list of registered users.
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to list users"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// blockUser godoc
// @Summary Block or unblock a user (admin)
// @Description Sets the blocked flag on a user account. Blocked users cannot
// @Description log in or move money; their accrual keeps running.
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param block body dto.BlockUserRequest true "Blocked flag"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to update user"
// @Security BearerAuth
// @Router /admin/users/{userID}/block [patch]
func (h *adminHandler) blockUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	var req dto.BlockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.SetBlocked(c.Request.Context(), userID, *req.Blocked)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to update user blocked flag", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	logger.Info("User blocked flag updated",
		slog.String("target_user_id", userID),
		slog.Bool("blocked", *req.Blocked))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user (admin)
// @Description Removes a user and all their funding and investment records.
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "User deleted"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to delete user"
// @Security BearerAuth
// @Router /admin/users/{userID} [delete]
func (h *adminHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to delete user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	logger.Info("User deleted", slog.String("target_user_id", userID))
	c.Status(http.StatusNoContent)
}

// listAllDeposits godoc
// @Summary List all deposits (admin)
// @Description Returns every deposit request joined with its owner.
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminDepositResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to list deposits"
// @Security BearerAuth
// @Router /admin/deposits [get]
func (h *adminHandler) listAllDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deposits, owners, err := h.fundingService.ListAllDeposits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list deposits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposits"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDepositResponses(deposits, owners))
}

// approveDeposit godoc
// @Summary Approve a deposit (admin)
// @Description Credits the user's balance and marks the deposit approved.
// @Tags admin
// @Produce json
// @Param depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Deposit is not pending"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 500 {object} map[string]string "Failed to approve deposit"
// @Security BearerAuth
// @Router /admin/deposits/{depositID}/approve [post]
func (h *adminHandler) approveDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	depositID := c.Param("depositID")
	deposit, err := h.fundingService.ApproveDeposit(c.Request.Context(), depositID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deposit is not pending"})
			return
		}
		logger.Error("Failed to approve deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve deposit"})
		return
	}

	logger.Info("Deposit approved", slog.String("deposit_id", depositID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(*deposit))
}

// rejectDeposit godoc
// @Summary Reject a deposit (admin)
// @Description Marks a pending deposit rejected. No balance change.
// @Tags admin
// @Produce json
// @Param depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Deposit is not pending"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 500 {object} map[string]string "Failed to reject deposit"
// @Security BearerAuth
// @Router /admin/deposits/{depositID}/reject [post]
func (h *adminHandler) rejectDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	depositID := c.Param("depositID")
	deposit, err := h.fundingService.RejectDeposit(c.Request.Context(), depositID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deposit is not pending"})
			return
		}
		logger.Error("Failed to reject deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject deposit"})
		return
	}

	logger.Info("Deposit rejected", slog.String("deposit_id", depositID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(*deposit))
}

// listAllWithdrawals godoc
// @Summary List all withdrawals (admin)
// @Description Returns every withdrawal request joined with its owner.
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminWithdrawalResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to list withdrawals"
// @Security BearerAuth
// @Router /admin/withdrawals [get]
func (h *adminHandler) listAllWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawals, owners, err := h.fundingService.ListAllWithdrawals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list withdrawals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdrawals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminWithdrawalResponses(withdrawals, owners))
}

// approveWithdrawal godoc
// @Summary Approve a withdrawal (admin)
// @Description Debits the user's balance and marks the withdrawal approved.
// @Description Pending profit is settled first so recent earnings count.
// @Tags admin
// @Produce json
// @Param withdrawalID path string true "Withdrawal ID"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 400 {object} map[string]string "Withdrawal not pending or balance insufficient"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 500 {object} map[string]string "Failed to approve withdrawal"
// @Security BearerAuth
// @Router /admin/withdrawals/{withdrawalID}/approve [post]
func (h *adminHandler) approveWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawalID := c.Param("withdrawalID")
	withdrawal, err := h.fundingService.ApproveWithdrawal(c.Request.Context(), withdrawalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User balance no longer covers the withdrawal"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Withdrawal is not pending"})
			return
		}
		logger.Error("Failed to approve withdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve withdrawal"})
		return
	}

	logger.Info("Withdrawal approved", slog.String("withdrawal_id", withdrawalID))
	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(*withdrawal))
}

// rejectWithdrawal godoc
// @Summary Reject a withdrawal (admin)
// @Description Marks a pending withdrawal rejected. No balance change.
// @Tags admin
// @Produce json
// @Param withdrawalID path string true "Withdrawal ID"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 400 {object} map[string]string "Withdrawal is not pending"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 500 {object} map[string]string "Failed to reject withdrawal"
// @Security BearerAuth
// @Router /admin/withdrawals/{withdrawalID}/reject [post]
func (h *adminHandler) rejectWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawalID := c.Param("withdrawalID")
	withdrawal, err := h.fundingService.RejectWithdrawal(c.Request.Context(), withdrawalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Withdrawal is not pending"})
			return
		}
		logger.Error("Failed to reject withdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject withdrawal"})
		return
	}

	logger.Info("Withdrawal rejected", slog.String("withdrawal_id", withdrawalID))
	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(*withdrawal))
}

// getPlatformStats godoc
// @Summary Platform statistics (admin)
// @Description Returns the aggregate view of users, funding and investments.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.PlatformStats
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminHandler) getPlatformStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.GetPlatformStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute platform stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
