package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/schoolworks/fees_ledger_app/internal/platform/metrics"
	"github.com/schoolworks/fees_ledger_app/internal/utils/receipt"
)

// paymentService implements payment recording. The repository owns the
// transactional write; this layer validates, issues the receipt number and
// dispatches the post-commit notification.
type paymentService struct {
	BaseService
	paymentRepo    portsrepo.PaymentRepositoryFacade
	assignmentRepo portsrepo.AssignmentReader
	notifier       portssvc.PaymentNotifier
}

// NewPaymentService creates a new payment service. notifier may be nil.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	assignmentRepo portsrepo.AssignmentReader,
	notifier portssvc.PaymentNotifier,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:    paymentRepo,
		assignmentRepo: assignmentRepo,
		notifier:       notifier,
	}
}

// RecordPayment validates the request, issues a receipt number and hands the
// payment to the repository, which locks the assignment, rechecks the
// remaining balance and applies the amount in one transaction. A receipt
// number collision is retried once with a fresh number.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error) {
	start := time.Now()
	payment, err := s.recordPayment(ctx, req, actorID)
	metrics.ObservePayment(err, time.Since(start))
	return payment, err
}

func (s *paymentService) recordPayment(ctx context.Context, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	if !domain.ValidPaymentMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	// Fast-fail checks outside the transaction. The repository rechecks the
	// balance under the row lock, so these are advisory only.
	assignment, err := s.assignmentRepo.FindAssignmentByID(ctx, req.AssignmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load assignment for payment", slog.String("assignment_id", req.AssignmentID))
		}
		return nil, err
	}
	if assignment.StudentID != req.StudentID {
		return nil, fmt.Errorf("%w: assignment %s does not belong to student %s", apperrors.ErrValidation, req.AssignmentID, req.StudentID)
	}
	if req.Amount.GreaterThan(assignment.Balance()) {
		return nil, fmt.Errorf("%w: amount %s exceeds remaining balance %s",
			apperrors.ErrOverpayment, req.Amount, assignment.Balance())
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:    uuid.NewString(),
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Amount:       req.Amount,
		Method:       req.Method,
		Reference:    req.Reference,
		PaymentDate:  now,
		RecordedBy:   actorID,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	updated, err := s.recordWithReceipt(ctx, &payment)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartialFailure) {
			s.LogError(ctx, err, "Payment commit outcome indeterminate, reconcile manually",
				slog.String("payment_id", payment.PaymentID),
				slog.String("receipt_number", payment.ReceiptNumber),
				slog.String("assignment_id", payment.AssignmentID))
		} else if !errors.Is(err, apperrors.ErrOverpayment) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to record payment", slog.String("assignment_id", payment.AssignmentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("receipt_number", payment.ReceiptNumber),
		slog.String("assignment_id", payment.AssignmentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("new_status", string(updated.Status)))

	s.notify(ctx, &payment)
	return &payment, nil
}

// recordWithReceipt issues a receipt number and writes the payment, retrying
// once with a fresh number if the unique constraint trips.
func (s *paymentService) recordWithReceipt(ctx context.Context, payment *domain.Payment) (*domain.StudentFeeAssignment, error) {
	for attempt := 0; attempt < 2; attempt++ {
		number, err := receipt.NewNumber(payment.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("failed to generate receipt number: %w", err)
		}
		payment.ReceiptNumber = number

		updated, err := s.paymentRepo.RecordPayment(ctx, *payment)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			metrics.IncReceiptConflict()
			s.LogDebug(ctx, "Receipt number collision, retrying with fresh number",
				slog.String("receipt_number", number))
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: receipt number collision persisted after retry", apperrors.ErrConflict)
}

// notify hands the recorded payment to the dispatcher. Delivery failures are
// the dispatcher's problem; the payment is already committed.
func (s *paymentService) notify(ctx context.Context, payment *domain.Payment) {
	if s.notifier == nil {
		return
	}
	event := portssvc.PaymentRecordedEvent{
		PaymentID:     payment.PaymentID,
		ReceiptNumber: payment.ReceiptNumber,
		AssignmentID:  payment.AssignmentID,
		StudentID:     payment.StudentID,
		Amount:        payment.Amount.String(),
		RecordedBy:    payment.RecordedBy,
	}
	go s.notifier.NotifyPaymentRecorded(context.WithoutCancel(ctx), event)
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPaymentsByAssignment(ctx context.Context, assignmentID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByAssignment(ctx, assignmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("assignment_id", assignmentID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}
