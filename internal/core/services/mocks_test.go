package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
)

// --- Mock FeeStructureRepository ---
type MockStructureRepository struct {
	mock.Mock
}

func (m *MockStructureRepository) SaveStructure(ctx context.Context, structure domain.FeeStructure) error {
	args := m.Called(ctx, structure)
	return args.Error(0)
}

func (m *MockStructureRepository) FindStructureByID(ctx context.Context, structureID string) (*domain.FeeStructure, error) {
	args := m.Called(ctx, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func (m *MockStructureRepository) UpdateStructure(ctx context.Context, structure domain.FeeStructure) error {
	args := m.Called(ctx, structure)
	return args.Error(0)
}

func (m *MockStructureRepository) DeleteStructure(ctx context.Context, structureID string) error {
	args := m.Called(ctx, structureID)
	return args.Error(0)
}

func (m *MockStructureRepository) ListStructures(ctx context.Context, filter portsrepo.StructureFilter) ([]domain.FeeStructure, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeStructure), args.Error(1)
}

// --- Mock AssignmentRepository ---
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.StudentFeeAssignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignmentsByStudent(ctx context.Context, studentID string) ([]domain.StudentFeeAssignment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentFeeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignmentsByStructure(ctx context.Context, structureID string) ([]domain.StudentFeeAssignment, error) {
	args := m.Called(ctx, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentFeeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.StudentFeeAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindAssignmentForUpdate(ctx context.Context, tx pgx.Tx, assignmentID string) (*domain.StudentFeeAssignment, error) {
	args := m.Called(ctx, tx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ApplyPaymentInTx(ctx context.Context, tx pgx.Tx, assignmentID string, newPaid decimal.Decimal, status domain.FeeStatus, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, assignmentID, newPaid, status, actorID, now)
	return args.Error(0)
}

func (m *MockAssignmentRepository) SweepOverdue(ctx context.Context, asOf time.Time, actorID string) (int, error) {
	args := m.Called(ctx, asOf, actorID)
	return args.Int(0), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByAssignment(ctx context.Context, assignmentID string) ([]domain.Payment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.StudentFeeAssignment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeAssignment), args.Error(1)
}

// --- Mock StudentRepository ---
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListStudents(ctx context.Context, class, section string) ([]domain.Student, error) {
	args := m.Called(ctx, class, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTotalCollected(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetTotalPending(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetOverdueCount(ctx context.Context, filter portsrepo.CollectionFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) GetPaymentsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Payment, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockReportingRepository) GetCollectionByFeeType(ctx context.Context, filter portsrepo.CollectionFilter) ([]domain.FeeTypeCollection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeTypeCollection), args.Error(1)
}

// --- Mock PaymentNotifier ---
type MockPaymentNotifier struct {
	mock.Mock
}

func (m *MockPaymentNotifier) NotifyPaymentRecorded(ctx context.Context, event portssvc.PaymentRecordedEvent) {
	m.Called(ctx, event)
}
