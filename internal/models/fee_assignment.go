package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStatus mirrors domain.FeeStatus for storage.
type FeeStatus string

// StudentFeeAssignment is the persistence shape of an assignment row.
type StudentFeeAssignment struct {
	AssignmentID string          `json:"assignmentID"`
	StructureID  string          `json:"structureID"`
	StudentID    string          `json:"studentID"`
	AmountDue    decimal.Decimal `json:"amountDue"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	DueDate      time.Time       `json:"dueDate"`
	Status       FeeStatus       `json:"status"`
	AuditFields
}
