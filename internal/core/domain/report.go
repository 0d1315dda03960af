package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FinancialReport aggregates transaction totals over a report window.
type FinancialReport struct {
	TotalCredits decimal.Decimal `json:"totalCredits"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	NetFlow      decimal.Decimal `json:"netFlow"` // TotalCredits - TotalDebits
}

// ResolveReportWindow maps a report type keyword to an inclusive [start, end]
// range ending at now. Calendar arithmetic is used for monthly and yearly
// windows, matching the weekly/monthly/yearly report semantics.
func ResolveReportWindow(reportType string, now time.Time) (start, end time.Time, err error) {
	end = now
	switch strings.ToLower(reportType) {
	case "weekly":
		start = now.AddDate(0, 0, -7)
	case "monthly":
		start = now.AddDate(0, -1, 0)
	case "yearly":
		start = now.AddDate(-1, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report type: %s", apperrors.ErrValidation, reportType)
	}
	return start, end, nil
}
