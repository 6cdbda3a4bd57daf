package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/harvestive/harvestive-backend/internal/apperrors"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
	"github.com/harvestive/harvestive-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// newInvestmentHandler creates a new investmentHandler.
func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{
		investmentService: is,
	}
}

// RegisterInvestmentRoutes registers the authenticated investment routes.
func RegisterInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.GET("", h.listInvestments)
		investments.POST("", h.openInvestment)
	}
}

// listPlans godoc
// @Summary List investment plans
// @Description Returns the available plans and their daily profit rates.
// @Tags investments
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Router /plans [get]
func (h *investmentHandler) listPlans(c *gin.Context) {
	plans := h.investmentService.ListPlans(c.Request.Context())
	out := make([]dto.PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = dto.PlanResponse{Name: p.Name, DailyRate: p.DailyRate}
	}
	c.JSON(http.StatusOK, out)
}

// openInvestment godoc
// @Summary Open an investment
// @Description Debits the user's balance and opens a fixed-term investment on the chosen plan.
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.OpenInvestmentRequest true "Plan and amount"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient balance"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Account is blocked"
// @Failure 500 {object} map[string]string "Failed to open investment"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) openInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.OpenInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	investment, err := h.investmentService.OpenInvestment(c.Request.Context(), userID, req)
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
		logger.Error("Failed to open investment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open investment"})
		return
	}

	logger.Info("Investment opened",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("plan", investment.Plan))
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(*investment, time.Now()))
}

// listInvestments godoc
// @Summary List own investments
// @Description Returns the user's investments, newest first, with pending profit settled.
// @Tags investments
// @Produce json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Account is blocked"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investments, err := h.investmentService.ListUserInvestments(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to list investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list investments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListInvestmentsResponse{
		Investments: dto.ToInvestmentResponses(investments, time.Now()),
	})
}
