package services

import (
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notifier = NewLogPaymentNotifier()
	container.Student = NewStudentService(repos.StudentRepo)
	container.Structure = NewFeeStructureService(repos.StructureRepo)
	container.Ledger = NewLedgerService(repos.AssignmentRepo, repos.StructureRepo, repos.StudentRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.AssignmentRepo, container.Notifier)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.FeeStructureSvcFacade = (*feeStructureService)(nil)
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
	_ portssvc.PaymentSvcFacade      = (*paymentService)(nil)
	_ portssvc.StudentSvcFacade      = (*studentService)(nil)
	_ portssvc.ReportingSvcFacade    = (*reportingService)(nil)
	_ portssvc.PaymentNotifier       = (*logPaymentNotifier)(nil)
)
