package dto

import (
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollectionFilterParams carries the optional reporting filters.
type CollectionFilterParams struct {
	From    time.Time      `form:"from" time_format:"2006-01-02"`
	To      time.Time      `form:"to" time_format:"2006-01-02"`
	FeeType domain.FeeType `form:"feeType"`
}

// CollectionSummaryResponse is the dashboard rollup.
type CollectionSummaryResponse struct {
	TotalCollected decimal.Decimal `json:"totalCollected"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	OverdueCount   int             `json:"overdueCount"`
}

// FeeTypeCollectionResponse is one row of the per-fee-type breakdown.
type FeeTypeCollectionResponse struct {
	FeeType   string          `json:"feeType"`
	Collected decimal.Decimal `json:"collected"`
	Payments  int             `json:"payments"`
}

// MonthlyCollectionResponse lists one month's payments with their total.
type MonthlyCollectionResponse struct {
	Month    string            `json:"month"`
	Payments []PaymentResponse `json:"payments"`
	Total    decimal.Decimal   `json:"total"`
}

// ToCollectionSummaryResponse converts the domain summary to its DTO.
func ToCollectionSummaryResponse(s *domain.CollectionSummary) CollectionSummaryResponse {
	return CollectionSummaryResponse{
		TotalCollected: s.TotalCollected,
		TotalPending:   s.TotalPending,
		OverdueCount:   s.OverdueCount,
	}
}

// ToMonthlyCollectionResponse converts the domain report to its DTO.
func ToMonthlyCollectionResponse(r *domain.MonthlyCollectionReport) MonthlyCollectionResponse {
	return MonthlyCollectionResponse{
		Month:    r.Month,
		Payments: ToPaymentResponses(r.Payments),
		Total:    r.Total,
	}
}
