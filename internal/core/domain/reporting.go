package domain

import (
	"github.com/shopspring/decimal"
)

// CollectionSummary rolls up the fee ledger for a dashboard card.
type CollectionSummary struct {
	TotalCollected decimal.Decimal `json:"totalCollected"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	OverdueCount   int             `json:"overdueCount"`
}

// FeeTypeCollection is one row of a collected-by-fee-type breakdown.
type FeeTypeCollection struct {
	FeeType   FeeType         `json:"feeType"`
	Collected decimal.Decimal `json:"collected"`
	Payments  int             `json:"payments"`
}

// MonthlyCollectionReport lists the payments of one calendar month together
// with their total, for the printable/downloadable collection register.
type MonthlyCollectionReport struct {
	Month    string          `json:"month"` // YYYY-MM
	Payments []Payment       `json:"payments"`
	Total    decimal.Decimal `json:"total"`
}
