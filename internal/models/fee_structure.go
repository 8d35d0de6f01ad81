package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeType mirrors domain.FeeType for storage.
type FeeType string

// Frequency mirrors domain.Frequency for storage.
type Frequency string

// FeeStructure is the persistence shape of a fee structure row.
type FeeStructure struct {
	StructureID  string          `json:"structureID"`
	Class        string          `json:"class"`
	Section      string          `json:"section"`
	AcademicYear string          `json:"academicYear"`
	FeeType      FeeType         `json:"feeType"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    Frequency       `json:"frequency"`
	DueDate      time.Time       `json:"dueDate"`
	Description  string          `json:"description"`
	AuditFields
}
