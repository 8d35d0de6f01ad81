package repositories

import (
	"context"
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollectionFilter narrows reporting aggregates. Zero values mean "any".
// From/To bound the payment date and therefore apply only to the
// payment-backed aggregates (collected totals); pending balances and overdue
// counts are point-in-time snapshots of the ledger, so only FeeType narrows
// them.
type CollectionFilter struct {
	From    time.Time
	To      time.Time
	FeeType domain.FeeType
}

// ReportingRepository defines the read-only rollups over the ledger and
// payment journal. All queries are safe to run concurrently with writers.
type ReportingRepository interface {
	// GetTotalCollected sums Payment.amount over payments matching the filter.
	GetTotalCollected(ctx context.Context, filter CollectionFilter) (decimal.Decimal, error)

	// GetTotalPending sums amount_due - amount_paid over assignments whose
	// status is not PAID, matching the filter's fee type. The filter's date
	// range is ignored; the balance is always current.
	GetTotalPending(ctx context.Context, filter CollectionFilter) (decimal.Decimal, error)

	// GetOverdueCount counts assignments with status OVERDUE matching the
	// filter's fee type. The filter's date range is ignored.
	GetOverdueCount(ctx context.Context, filter CollectionFilter) (int, error)

	// GetPaymentsByMonth retrieves the payments whose payment date falls in
	// the given month, oldest first.
	GetPaymentsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Payment, error)

	// GetCollectionByFeeType breaks collected totals down per fee type.
	GetCollectionByFeeType(ctx context.Context, filter CollectionFilter) ([]domain.FeeTypeCollection, error)
}
