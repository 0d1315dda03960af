package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/kiranabook/kirana_backend/internal/core/domain"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/kiranabook/kirana_backend/internal/dto"
	"github.com/kiranabook/kirana_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// transactionHandler handles HTTP requests related to transactions and reports.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(r *gin.Engine, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := r.Group("/api/transactions")
	{
		transactions.POST("/addtransaction", h.addTransaction)
		transactions.GET("/reports", h.getReports)
		transactions.GET("/summary", h.getSummary)
	}
}

// addTransaction records a new credit or debit. The amount is converted to
// the base currency before being stored.
func (h *transactionHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AddTransactionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for AddTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		logger.Warn("Invalid amount for AddTransaction", slog.String("amount", params.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + params.Amount})
		return
	}

	req := dto.AddTransactionRequest{
		Amount:   amount,
		Type:     params.Type,
		Currency: strings.ToUpper(params.Currency),
	}

	logger.Info("Received request to add transaction",
		slog.String("type", params.Type),
		slog.String("currency", req.Currency),
	)

	txn, err := h.transactionService.AddTransaction(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRateLimited):
			logger.Warn("Transaction creation rate limited")
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later."})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adding transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConversion):
			logger.Error("Currency conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Currency conversion failed"})
		default:
			logger.Error("Failed to add transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add transaction"})
		}
		return
	}

	logger.Info("Transaction added successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getReports lists all transactions inside the requested report window.
func (h *transactionHandler) getReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := h.bindReportWindow(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.GetReports(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		return
	}

	logger.Info("Report generated successfully", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns))
}

// getSummary returns the aggregate credit/debit/net-flow totals for the
// requested report window.
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := h.bindReportWindow(c)
	if !ok {
		return
	}

	report, err := h.transactionService.GenerateFinancialReport(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to generate financial report from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate financial report"})
		return
	}

	logger.Info("Financial report generated successfully")
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// bindReportWindow binds the report type parameter and resolves it to a time
// range. It writes the error response itself and reports success via ok.
func (h *transactionHandler) bindReportWindow(c *gin.Context) (start, end time.Time, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}

	start, end, err := domain.ResolveReportWindow(params.Type, time.Now())
	if err != nil {
		logger.Warn("Unknown report type", slog.String("type", params.Type))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
