package mapping

import (
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/schoolworks/fees_ledger_app/internal/models"
)

// ToModelFeeStructure converts a domain FeeStructure to a model FeeStructure.
func ToModelFeeStructure(d domain.FeeStructure) models.FeeStructure {
	return models.FeeStructure{
		StructureID:  d.StructureID,
		Class:        d.Class,
		Section:      d.Section,
		AcademicYear: d.AcademicYear,
		FeeType:      models.FeeType(d.FeeType),
		Amount:       d.Amount,
		Frequency:    models.Frequency(d.Frequency),
		DueDate:      d.DueDate,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFeeStructure converts a model FeeStructure to a domain FeeStructure.
func ToDomainFeeStructure(m models.FeeStructure) domain.FeeStructure {
	return domain.FeeStructure{
		StructureID:  m.StructureID,
		Class:        m.Class,
		Section:      m.Section,
		AcademicYear: m.AcademicYear,
		FeeType:      domain.FeeType(m.FeeType),
		Amount:       m.Amount,
		Frequency:    domain.Frequency(m.Frequency),
		DueDate:      m.DueDate,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssignment converts a domain assignment to its model shape.
func ToModelAssignment(d domain.StudentFeeAssignment) models.StudentFeeAssignment {
	return models.StudentFeeAssignment{
		AssignmentID: d.AssignmentID,
		StructureID:  d.StructureID,
		StudentID:    d.StudentID,
		AmountDue:    d.AmountDue,
		AmountPaid:   d.AmountPaid,
		DueDate:      d.DueDate,
		Status:       models.FeeStatus(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignment converts a model assignment to its domain shape.
func ToDomainAssignment(m models.StudentFeeAssignment) domain.StudentFeeAssignment {
	return domain.StudentFeeAssignment{
		AssignmentID: m.AssignmentID,
		StructureID:  m.StructureID,
		StudentID:    m.StudentID,
		AmountDue:    m.AmountDue,
		AmountPaid:   m.AmountPaid,
		DueDate:      m.DueDate,
		Status:       domain.FeeStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssignmentSlice converts model assignments to domain assignments.
func ToDomainAssignmentSlice(ms []models.StudentFeeAssignment) []domain.StudentFeeAssignment {
	ds := make([]domain.StudentFeeAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignment(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ReceiptNumber: d.ReceiptNumber,
		AssignmentID:  d.AssignmentID,
		StudentID:     d.StudentID,
		Amount:        d.Amount,
		Method:        models.PaymentMethod(d.Method),
		Reference:     d.Reference,
		PaymentDate:   d.PaymentDate,
		RecordedBy:    d.RecordedBy,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ReceiptNumber: m.ReceiptNumber,
		AssignmentID:  m.AssignmentID,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.Method),
		Reference:     m.Reference,
		PaymentDate:   m.PaymentDate,
		RecordedBy:    m.RecordedBy,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts model payments to domain payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelStudent converts a domain Student to a model Student.
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		StudentID:   d.StudentID,
		Name:        d.Name,
		Class:       d.Class,
		Section:     d.Section,
		AdmissionNo: d.AdmissionNo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStudent converts a model Student to a domain Student.
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		StudentID:   m.StudentID,
		Name:        m.Name,
		Class:       m.Class,
		Section:     m.Section,
		AdmissionNo: m.AdmissionNo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
