package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/kiranabook/kirana_backend/internal/core/domain"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/kiranabook/kirana_backend/internal/dto"
	"github.com/kiranabook/kirana_backend/internal/handlers"
	"github.com/kiranabook/kirana_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) AddTransaction(ctx context.Context, req dto.AddTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetReports(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GenerateFinancialReport(ctx context.Context, start, end time.Time) (*domain.FinancialReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	mockService *MockTransactionService
	router      *gin.Engine
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockTransactionService)
	suite.router = gin.New()

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Transaction: suite.mockService,
	})
}

func (suite *TransactionHandlerTestSuite) perform(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_Success() {
	created := &domain.Transaction{
		TransactionID: "txn-1",
		Amount:        decimal.NewFromInt(83000),
		Currency:      "INR",
		Type:          domain.Credit,
		CreatedAt:     time.Now(),
	}
	suite.mockService.On("AddTransaction", mock.Anything, mock.MatchedBy(func(req dto.AddTransactionRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(1000)) &&
			req.Type == "credit" &&
			req.Currency == "USD" // lowercased input is normalized
	})).Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=1000&type=credit&currency=usd")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.TransactionID)
	suite.Equal("INR", resp.Currency)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(83000)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_InvalidAmount() {
	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=abc&type=credit&currency=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_MissingParams() {
	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=1000")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_BadCurrencyCode() {
	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=1000&type=credit&currency=US1")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_RateLimited() {
	suite.mockService.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrRateLimited).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=1000&type=credit&currency=USD")

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Contains(w.Body.String(), "Too many requests")
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_InvalidType() {
	suite.mockService.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=1000&type=transfer&currency=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestAddTransaction_ConversionFailure() {
	suite.mockService.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConversion).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/addtransaction?amount=1000&type=credit&currency=USD")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetReports_WeeklyWindow() {
	txns := []domain.Transaction{
		{TransactionID: "txn-1", Amount: decimal.NewFromInt(500), Currency: "INR", Type: domain.Debit, CreatedAt: time.Now()},
	}
	suite.mockService.On("GetReports", mock.Anything,
		mock.MatchedBy(func(start time.Time) bool {
			expected := time.Now().AddDate(0, 0, -7)
			return start.Sub(expected).Abs() < time.Minute
		}),
		mock.MatchedBy(func(end time.Time) bool {
			return time.Since(end).Abs() < time.Minute
		}),
	).Return(txns, nil).Once()

	w := suite.perform(http.MethodGet, "/api/transactions/reports?type=weekly")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal("txn-1", resp[0].TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetReports_EmptyRendersArray() {
	suite.mockService.On("GetReports", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/transactions/reports?type=monthly")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestGetReports_UnknownType() {
	w := suite.perform(http.MethodGet, "/api/transactions/reports?type=daily")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetReports", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetSummary() {
	report := &domain.FinancialReport{
		TotalCredits: decimal.NewFromInt(150),
		TotalDebits:  decimal.NewFromInt(30),
		NetFlow:      decimal.NewFromInt(120),
	}
	suite.mockService.On("GenerateFinancialReport", mock.Anything, mock.Anything, mock.Anything).
		Return(report, nil).Once()

	w := suite.perform(http.MethodGet, "/api/transactions/summary?type=yearly")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.FinancialReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetFlow.Equal(decimal.NewFromInt(120)))
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_UnknownType() {
	w := suite.perform(http.MethodGet, "/api/transactions/summary?type=hourly")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GenerateFinancialReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
