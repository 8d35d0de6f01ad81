package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStatus is the derived state of a student fee assignment.
type FeeStatus string

const (
	StatusPending FeeStatus = "PENDING"
	StatusPartial FeeStatus = "PARTIAL"
	StatusPaid    FeeStatus = "PAID"
	StatusOverdue FeeStatus = "OVERDUE"
)

// StudentFeeAssignment binds a fee structure to one student and carries the
// running balance. AmountDue is fixed at assignment time; AmountPaid only ever
// grows, and must always equal the sum of payments against the assignment.
type StudentFeeAssignment struct {
	AssignmentID string          `json:"assignmentID"` // Primary Key (UUID)
	StructureID  string          `json:"structureID"`  // FK -> fee_structures
	StudentID    string          `json:"studentID"`    // FK -> students
	AmountDue    decimal.Decimal `json:"amountDue"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	DueDate      time.Time       `json:"dueDate"` // Snapshot of the structure's due date
	Status       FeeStatus       `json:"status"`
	AuditFields
}

// Balance returns the amount still owed on the assignment.
func (a StudentFeeAssignment) Balance() decimal.Decimal {
	return a.AmountDue.Sub(a.AmountPaid)
}

// DeriveStatus computes the status an assignment should carry given its amounts,
// its due date and the current time. Status is a pure function of these inputs:
//
//	paid    >= due            -> PAID
//	0 < paid < due, not due   -> PARTIAL
//	paid    < due, past due   -> OVERDUE
//	paid ==  0,   not due     -> PENDING
//
// Newly created assignments always start PENDING regardless of the due date;
// the overdue sweep (or a payment recompute) is the only path to OVERDUE.
func DeriveStatus(amountDue, amountPaid decimal.Decimal, dueDate, now time.Time) FeeStatus {
	if amountPaid.GreaterThanOrEqual(amountDue) {
		return StatusPaid
	}
	if dueDate.Before(now) {
		return StatusOverdue
	}
	if amountPaid.IsPositive() {
		return StatusPartial
	}
	return StatusPending
}
