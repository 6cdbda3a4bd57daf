package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harvestive/harvestive-backend/internal/apperrors"
	"github.com/harvestive/harvestive-backend/internal/core/domain"
	portssvc "github.com/harvestive/harvestive-backend/internal/core/ports/services"
	"github.com/harvestive/harvestive-backend/internal/dto"
	"github.com/harvestive/harvestive-backend/internal/handlers"
	"github.com/harvestive/harvestive-backend/internal/middleware"
	"github.com/harvestive/harvestive-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvestmentService ---
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) ListUserInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) ListPlans(ctx context.Context) []domain.Plan {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Plan)
}

func (m *MockInvestmentService) OpenInvestment(ctx context.Context, userID string, req dto.OpenInvestmentRequest) (*domain.Investment, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvestmentSvcFacade = (*MockInvestmentService)(nil)

// --- Test Suite ---
type InvestmentHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockInvestmentService *MockInvestmentService
	jwtSecret             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *InvestmentHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, false, suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *InvestmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockInvestmentService = new(MockInvestmentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterInvestmentRoutes(v1, suite.mockInvestmentService)
}

func (suite *InvestmentHandlerTestSuite) performRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *InvestmentHandlerTestSuite) TestOpenInvestment_Success() {
	userID := uuid.NewString()
	now := time.Now()
	expected := &domain.Investment{
		InvestmentID:      uuid.NewString(),
		UserID:            userID,
		Amount:            decimal.NewFromInt(1000),
		Plan:              "STANDARD PLAN",
		DailyRate:         decimal.NewFromFloat(0.035),
		Status:            domain.InvestmentActive,
		StartDate:         now,
		EndDate:           now.Add(30 * 24 * time.Hour),
		TotalDays:         30,
		TotalProfitEarned: decimal.Zero,
		LastProfitAt:      now,
		CreatedAt:         now,
	}

	suite.mockInvestmentService.On("OpenInvestment",
		mock.Anything,
		userID,
		mock.MatchedBy(func(req dto.OpenInvestmentRequest) bool {
			return req.Plan == "STANDARD PLAN" && req.Amount.Equal(decimal.NewFromInt(1000))
		}),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(gin.H{"amount": 1000, "plan": "STANDARD PLAN"})
	w := suite.performRequest(http.MethodPost, "/api/v1/investments", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvestmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.InvestmentID, resp.InvestmentID)
	suite.Equal("STANDARD PLAN", resp.Plan)
	suite.True(resp.IsActive)
	suite.Equal(30, resp.TotalDays)
	suite.mockInvestmentService.AssertExpectations(suite.T())
}

func (suite *InvestmentHandlerTestSuite) TestOpenInvestment_InsufficientBalance() {
	userID := uuid.NewString()

	suite.mockInvestmentService.On("OpenInvestment", mock.Anything, userID, mock.Anything).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	body, _ := json.Marshal(gin.H{"amount": 1000000, "plan": "PREMIUM PLAN"})
	w := suite.performRequest(http.MethodPost, "/api/v1/investments", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Insufficient balance")
}

func (suite *InvestmentHandlerTestSuite) TestOpenInvestment_UnknownPlan() {
	userID := uuid.NewString()

	suite.mockInvestmentService.On("OpenInvestment", mock.Anything, userID, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(gin.H{"amount": 500, "plan": "NO SUCH PLAN"})
	w := suite.performRequest(http.MethodPost, "/api/v1/investments", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvestmentHandlerTestSuite) TestOpenInvestment_MissingToken() {
	body, _ := json.Marshal(gin.H{"amount": 1000, "plan": "STANDARD PLAN"})
	w := suite.performRequest(http.MethodPost, "/api/v1/investments", "", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockInvestmentService.AssertNotCalled(suite.T(), "OpenInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentHandlerTestSuite) TestOpenInvestment_InvalidBody() {
	userID := uuid.NewString()

	// amount must be > 0
	body, _ := json.Marshal(gin.H{"amount": -5, "plan": "STANDARD PLAN"})
	w := suite.performRequest(http.MethodPost, "/api/v1/investments", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvestmentService.AssertNotCalled(suite.T(), "OpenInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentHandlerTestSuite) TestListInvestments_Success() {
	userID := uuid.NewString()
	now := time.Now()
	investments := []domain.Investment{
		{
			InvestmentID:      uuid.NewString(),
			UserID:            userID,
			Amount:            decimal.NewFromInt(1000),
			Plan:              "STANDARD PLAN",
			DailyRate:         decimal.NewFromFloat(0.035),
			Status:            domain.InvestmentActive,
			StartDate:         now.Add(-5 * 24 * time.Hour),
			EndDate:           now.Add(25 * 24 * time.Hour),
			TotalDays:         30,
			DaysCompleted:     5,
			TotalProfitEarned: decimal.NewFromInt(175),
			LastProfitAt:      now,
		},
		{
			InvestmentID:    uuid.NewString(),
			UserID:          userID,
			Amount:          decimal.NewFromInt(500),
			Plan:            "PREMIUM PLAN",
			DailyRate:       decimal.NewFromFloat(0.045),
			Status:          domain.InvestmentCompleted,
			StartDate:       now.Add(-40 * 24 * time.Hour),
			EndDate:         now.Add(-10 * 24 * time.Hour),
			TotalDays:       30,
			DaysCompleted:   30,
			CapitalReturned: true,
		},
	}

	suite.mockInvestmentService.On("ListUserInvestments", mock.Anything, userID).
		Return(investments, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/investments", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListInvestmentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Investments, 2)
	suite.True(resp.Investments[0].IsActive)
	suite.Equal(25, resp.Investments[0].RemainingDays)
	suite.True(resp.Investments[1].IsCompleted)
	suite.Equal(0, resp.Investments[1].RemainingDays)
	suite.mockInvestmentService.AssertExpectations(suite.T())
}

func (suite *InvestmentHandlerTestSuite) TestListInvestments_ServiceError() {
	userID := uuid.NewString()

	suite.mockInvestmentService.On("ListUserInvestments", mock.Anything, userID).
		Return(nil, apperrors.NewAppError(500, "database unavailable", nil)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/investments", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestInvestmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentHandlerTestSuite))
}
