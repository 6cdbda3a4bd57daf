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

// fundingHandler handles the user-facing deposit and withdrawal requests.
type fundingHandler struct {
	fundingService portssvc.FundingSvcFacade
}

// newFundingHandler creates a new fundingHandler.
func newFundingHandler(fs portssvc.FundingSvcFacade) *fundingHandler {
	return &fundingHandler{
		fundingService: fs,
	}
}

// registerFundingRoutes registers the authenticated funding routes.
func registerFundingRoutes(rg *gin.RouterGroup, fundingService portssvc.FundingSvcFacade) {
	h := newFundingHandler(fundingService)

	deposits := rg.Group("/deposits")
	{
		deposits.GET("", h.listDeposits)
		deposits.POST("", h.requestDeposit)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.POST("", h.requestWithdrawal)
	}
}

// requestDeposit godoc
// @Summary Request a deposit
// @Description Records a pending deposit for admin review. No balance change until approval.
// @Tags funding
// @Accept json
// @Produce json
// @Param deposit body dto.CreateDepositRequest true "Amount and method"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Account is blocked"
// @Failure 500 {object} map[string]string "Failed to request deposit"
// @Security BearerAuth
// @Router /deposits [post]
func (h *fundingHandler) requestDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.fundingService.RequestDeposit(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to request deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request deposit"})
		return
	}

	logger.Info("Deposit requested", slog.String("deposit_id", deposit.DepositID))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(*deposit))
}

// listDeposits godoc
// @Summary List own deposits
// @Description Returns the user's deposit requests, newest first.
// @Tags funding
// @Produce json
// @Success 200 {object} dto.ListDepositsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list deposits"
// @Security BearerAuth
// @Router /deposits [get]
func (h *fundingHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deposits, err := h.fundingService.ListUserDeposits(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list deposits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposits"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDepositsResponse{Deposits: dto.ToDepositResponses(deposits)})
}

// requestWithdrawal godoc
// @Summary Request a withdrawal
// @Description Records a pending withdrawal for admin review. The balance is checked
// @Description after pending profit is settled, but only debited on approval.
// @Tags funding
// @Accept json
// @Produce json
// @Param withdrawal body dto.CreateWithdrawalRequest true "Amount, method and payout address"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient balance"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Account is blocked"
// @Failure 500 {object} map[string]string "Failed to request withdrawal"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *fundingHandler) requestWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	withdrawal, err := h.fundingService.RequestWithdrawal(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to request withdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request withdrawal"})
		return
	}

	logger.Info("Withdrawal requested", slog.String("withdrawal_id", withdrawal.WithdrawalID))
	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(*withdrawal))
}

// listWithdrawals godoc
// @Summary List own withdrawals
// @Description Returns the user's withdrawal requests, newest first.
// @Tags funding
// @Produce json
// @Success 200 {object} dto.ListWithdrawalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list withdrawals"
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *fundingHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	withdrawals, err := h.fundingService.ListUserWithdrawals(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list withdrawals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdrawals"})
		return
	}

	c.JSON(http.StatusOK, dto.ListWithdrawalsResponse{Withdrawals: dto.ToWithdrawalResponses(withdrawals)})
}
