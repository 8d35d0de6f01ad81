package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod mirrors domain.PaymentMethod for storage.
type PaymentMethod string

// Payment is the persistence shape of a payment journal row.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	ReceiptNumber string          `json:"receiptNumber"`
	AssignmentID  string          `json:"assignmentID"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	Reference     string          `json:"reference"`
	PaymentDate   time.Time       `json:"paymentDate"`
	RecordedBy    string          `json:"recordedBy"`
	Notes         string          `json:"notes"`
	AuditFields
}
