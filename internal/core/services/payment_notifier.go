package services

import (
	"context"
	"log/slog"

	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
)

// logPaymentNotifier is the default dispatcher: it emits a structured log line
// for each recorded payment. Deployments that hook up SMS or email replace it
// behind the same interface.
type logPaymentNotifier struct {
	BaseService
}

// NewLogPaymentNotifier creates a notifier that logs payment events.
func NewLogPaymentNotifier() portssvc.PaymentNotifier {
	return &logPaymentNotifier{}
}

func (n *logPaymentNotifier) NotifyPaymentRecorded(ctx context.Context, event portssvc.PaymentRecordedEvent) {
	n.GetLogger(ctx).Info("Payment notification",
		slog.String("payment_id", event.PaymentID),
		slog.String("receipt_number", event.ReceiptNumber),
		slog.String("assignment_id", event.AssignmentID),
		slog.String("student_id", event.StudentID),
		slog.String("amount", event.Amount),
		slog.String("recorded_by", event.RecordedBy))
}
