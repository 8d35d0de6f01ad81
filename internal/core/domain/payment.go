package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod indicates how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodUPI          PaymentMethod = "UPI"
	MethodCard         PaymentMethod = "CARD"
	MethodCheque       PaymentMethod = "CHEQUE"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// ValidPaymentMethod reports whether m is one of the known payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodUPI, MethodCard, MethodCheque, MethodBankTransfer:
		return true
	}
	return false
}

// Payment is an immutable, audit-grade ledger entry for money received against
// one assignment. It is created exactly once and never edited or deleted.
type Payment struct {
	PaymentID     string          `json:"paymentID"`     // Primary Key (UUID)
	ReceiptNumber string          `json:"receiptNumber"` // Globally unique, human-facing
	AssignmentID  string          `json:"assignmentID"`  // FK -> student_fee_assignments
	StudentID     string          `json:"studentID"`     // FK -> students
	Amount        decimal.Decimal `json:"amount"`        // Must be > 0
	Method        PaymentMethod   `json:"method"`
	Reference     string          `json:"reference"` // External txn id / cheque number
	PaymentDate   time.Time       `json:"paymentDate"`
	RecordedBy    string          `json:"recordedBy"` // Actor id from the identity provider
	Notes         string          `json:"notes"`
	AuditFields
}
