package services

import (
	"context"
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade exposes the student fee assignment ledger. All balance and
// status mutation funnels through the payment recorder and the overdue sweep;
// nothing else writes assignment rows.
type LedgerSvcFacade interface {
	// AssignFee binds a fee structure to a student, snapshotting the amount
	// due and due date from the structure. The new assignment starts PENDING
	// with nothing paid, even when the due date is already in the past.
	AssignFee(ctx context.Context, req dto.AssignFeeRequest, creatorUserID string) (*domain.StudentFeeAssignment, error)

	// GetAssignmentByID retrieves a single assignment.
	GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.StudentFeeAssignment, error)

	// GetBalance returns amount_due - amount_paid for the assignment.
	GetBalance(ctx context.Context, assignmentID string) (decimal.Decimal, error)

	// ListAssignmentsByStudent retrieves one student's assignments.
	ListAssignmentsByStudent(ctx context.Context, studentID string) ([]domain.StudentFeeAssignment, error)

	// SweepOverdue marks unpaid, past-due assignments OVERDUE as of asOf.
	// Idempotent and safe to run concurrently with payment recording.
	SweepOverdue(ctx context.Context, asOf time.Time, actorID string) (int, error)
}
