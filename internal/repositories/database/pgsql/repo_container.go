package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	structureRepo := newPgxFeeStructureRepository(dbPool)
	assignmentRepo := newPgxAssignmentRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool, assignmentRepo)
	studentRepo := newPgxStudentRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		StructureRepo:  structureRepo,
		AssignmentRepo: assignmentRepo,
		PaymentRepo:    paymentRepo,
		StudentRepo:    studentRepo,
		ReportingRepo:  reportingRepo,
	}
}
