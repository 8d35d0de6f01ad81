package repositories

import (
	"context"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
)

// PaymentReader defines read operations for the payment journal.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentsByAssignment retrieves all payments against one assignment,
	// oldest first (journal order).
	FindPaymentsByAssignment(ctx context.Context, assignmentID string) ([]domain.Payment, error)
}

// PaymentWriter defines the single write operation of the append-only journal.
type PaymentWriter interface {
	// RecordPayment persists the payment and applies it to the assignment's
	// running balance in one database transaction: the assignment is
	// row-locked, the remaining balance rechecked, the payment inserted and
	// the ledger updated, all-or-nothing. Fails with ErrOverpayment if the
	// recheck fails, ErrConflict on a receipt-number collision, and
	// ErrPartialFailure if the commit outcome is indeterminate.
	// On success the updated assignment is returned alongside no error.
	RecordPayment(ctx context.Context, payment domain.Payment) (*domain.StudentFeeAssignment, error)
}

// PaymentRepositoryFacade combines the payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
