package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/schoolworks/fees_ledger_app/internal/platform/metrics"
)

// ledgerService implements the assignment ledger. Balance mutation is out of
// its hands: payments go through the payment recorder, overdue transitions
// through the sweep.
type ledgerService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	structureRepo  portsrepo.FeeStructureReader
	studentRepo    portsrepo.StudentRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	assignmentRepo portsrepo.AssignmentRepositoryFacade,
	structureRepo portsrepo.FeeStructureReader,
	studentRepo portsrepo.StudentRepositoryFacade,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		assignmentRepo: assignmentRepo,
		structureRepo:  structureRepo,
		studentRepo:    studentRepo,
	}
}

// AssignFee snapshots the structure's amount and due date into a new PENDING
// assignment. A past due date does not make the new row OVERDUE; only the
// sweep and payment recording derive status.
func (s *ledgerService) AssignFee(ctx context.Context, req dto.AssignFeeRequest, creatorUserID string) (*domain.StudentFeeAssignment, error) {
	structure, err := s.structureRepo.FindStructureByID(ctx, req.StructureID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find structure for assignment", slog.String("structure_id", req.StructureID))
		}
		return nil, err
	}
	if _, err := s.studentRepo.FindStudentByID(ctx, req.StudentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find student for assignment", slog.String("student_id", req.StudentID))
		}
		return nil, err
	}

	now := time.Now()
	assignment := domain.StudentFeeAssignment{
		AssignmentID: uuid.NewString(),
		StructureID:  structure.StructureID,
		StudentID:    req.StudentID,
		AmountDue:    structure.Amount,
		AmountPaid:   decimal.Zero,
		DueDate:      structure.DueDate,
		Status:       domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.assignmentRepo.SaveAssignment(ctx, assignment); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save assignment",
				slog.String("structure_id", req.StructureID), slog.String("student_id", req.StudentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Fee assigned",
		slog.String("assignment_id", assignment.AssignmentID),
		slog.String("student_id", assignment.StudentID),
		slog.String("amount_due", assignment.AmountDue.String()))
	return &assignment, nil
}

func (s *ledgerService) GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.StudentFeeAssignment, error) {
	assignment, err := s.assignmentRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find assignment", slog.String("assignment_id", assignmentID))
		}
		return nil, err
	}
	return assignment, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, assignmentID string) (decimal.Decimal, error) {
	assignment, err := s.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return decimal.Zero, err
	}
	return assignment.Balance(), nil
}

func (s *ledgerService) ListAssignmentsByStudent(ctx context.Context, studentID string) ([]domain.StudentFeeAssignment, error) {
	assignments, err := s.assignmentRepo.ListAssignmentsByStudent(ctx, studentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assignments", slog.String("student_id", studentID))
		return nil, err
	}
	if assignments == nil {
		return []domain.StudentFeeAssignment{}, nil
	}
	return assignments, nil
}

// SweepOverdue marks every unpaid, past-due assignment OVERDUE. The predicate
// is rechecked at write time, so a payment landing mid-sweep wins.
func (s *ledgerService) SweepOverdue(ctx context.Context, asOf time.Time, actorID string) (int, error) {
	transitioned, err := s.assignmentRepo.SweepOverdue(ctx, asOf, actorID)
	metrics.ObserveSweep(err, transitioned)
	if err != nil {
		s.LogError(ctx, err, "Overdue sweep failed", slog.Time("as_of", asOf))
		return 0, err
	}
	s.LogInfo(ctx, "Overdue sweep completed", slog.Int("transitioned", transitioned), slog.Time("as_of", asOf))
	return transitioned, nil
}
