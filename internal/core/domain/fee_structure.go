package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeType categorises what a fee structure bills for.
type FeeType string

const (
	FeeTuition   FeeType = "TUITION"
	FeeTransport FeeType = "TRANSPORT"
	FeeLibrary   FeeType = "LIBRARY"
	FeeLab       FeeType = "LAB"
	FeeSports    FeeType = "SPORTS"
	FeeExam      FeeType = "EXAM"
	FeeOther     FeeType = "OTHER"
)

// ValidFeeType reports whether t is one of the known fee types.
func ValidFeeType(t FeeType) bool {
	switch t {
	case FeeTuition, FeeTransport, FeeLibrary, FeeLab, FeeSports, FeeExam, FeeOther:
		return true
	}
	return false
}

// Frequency indicates how often a fee structure recurs.
type Frequency string

const (
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyAnnual    Frequency = "ANNUAL"
	FrequencyOneTime   Frequency = "ONE_TIME"
)

// ValidFrequency reports whether f is one of the known frequencies.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual, FrequencyOneTime:
		return true
	}
	return false
}

// FeeStructure defines a billable item scoped to a class/section for an academic year.
// Assignments snapshot its amount and due date at creation time, so later edits to
// the structure never rewrite already-issued balances.
type FeeStructure struct {
	StructureID  string          `json:"structureID"` // Primary Key (UUID)
	Class        string          `json:"class"`
	Section      string          `json:"section"`
	AcademicYear string          `json:"academicYear"`
	FeeType      FeeType         `json:"feeType"`
	Amount       decimal.Decimal `json:"amount"` // Must be > 0
	Frequency    Frequency       `json:"frequency"`
	DueDate      time.Time       `json:"dueDate"`
	Description  string          `json:"description"` // Optional free text
	AuditFields
}
