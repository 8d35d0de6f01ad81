package services

import (
	"context"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
)

// PaymentSvcFacade exposes payment recording and receipt lookup.
type PaymentSvcFacade interface {
	// RecordPayment validates the request, issues a receipt number, persists
	// the immutable payment and updates the assignment's running balance as
	// one transaction. Returns the payment including its receipt number.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error)

	// GetPaymentByID retrieves a single payment for receipt re-rendering.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByAssignment retrieves the payment history of an assignment.
	ListPaymentsByAssignment(ctx context.Context, assignmentID string) ([]domain.Payment, error)
}

// PaymentRecordedEvent is handed to the notification dispatcher after a
// payment commits. Delivery is fire-and-forget.
type PaymentRecordedEvent struct {
	PaymentID     string
	ReceiptNumber string
	AssignmentID  string
	StudentID     string
	Amount        string
	RecordedBy    string
}

// PaymentNotifier receives fire-and-forget events after successful payments.
// Implementations must never block payment recording; a failed notification
// never rolls back the payment.
type PaymentNotifier interface {
	NotifyPaymentRecorded(ctx context.Context, event PaymentRecordedEvent)
}
