package services

import (
	"context"
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade exposes the read-only rollups over the fee ledger.
type ReportingSvcFacade interface {
	// TotalCollected sums payment amounts matching the filter.
	TotalCollected(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error)

	// TotalPending sums outstanding balances over non-paid assignments.
	TotalPending(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error)

	// OverdueCount counts assignments currently marked OVERDUE.
	OverdueCount(ctx context.Context, filter portsrepo.CollectionFilter) (int, error)

	// CollectionSummary combines the three aggregates for a dashboard card.
	CollectionSummary(ctx context.Context, filter portsrepo.CollectionFilter) (*domain.CollectionSummary, error)

	// PaymentsByMonth builds the collection register for one calendar month.
	PaymentsByMonth(ctx context.Context, year int, month time.Month) (*domain.MonthlyCollectionReport, error)

	// CollectionByFeeType breaks collected totals down per fee type.
	CollectionByFeeType(ctx context.Context, filter portsrepo.CollectionFilter) ([]domain.FeeTypeCollection, error)
}
