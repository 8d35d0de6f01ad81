package dto

import (
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the payload for recording a payment against an
// assignment. The recording actor comes from the auth context, not the body.
type RecordPaymentRequest struct {
	AssignmentID string               `json:"assignmentID" binding:"required"`
	StudentID    string               `json:"studentID" binding:"required"`
	Amount       decimal.Decimal      `json:"amount" binding:"required"`
	Method       domain.PaymentMethod `json:"method" binding:"required,paymethod"`
	Reference    string               `json:"reference"`
	Notes        string               `json:"notes"`
}

// PaymentResponse carries the fields the presentation layer renders into a
// printable receipt.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	ReceiptNumber string          `json:"receiptNumber"`
	AssignmentID  string          `json:"assignmentID"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference,omitempty"`
	PaymentDate   time.Time       `json:"paymentDate"`
	RecordedBy    string          `json:"recordedBy"`
	Notes         string          `json:"notes,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ReceiptNumber: p.ReceiptNumber,
		AssignmentID:  p.AssignmentID,
		StudentID:     p.StudentID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Reference:     p.Reference,
		PaymentDate:   p.PaymentDate,
		RecordedBy:    p.RecordedBy,
		Notes:         p.Notes,
	}
}

// ToPaymentResponses converts a slice of domain payments to DTOs.
func ToPaymentResponses(ps []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(ps))
	for i := range ps {
		responses[i] = ToPaymentResponse(&ps[i])
	}
	return responses
}
