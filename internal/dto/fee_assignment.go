package dto

import (
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssignFeeRequest binds a fee structure to a student.
type AssignFeeRequest struct {
	StudentID   string `json:"studentID" binding:"required"`
	StructureID string `json:"structureID" binding:"required"`
}

// AssignmentResponse defines the data returned for a student fee assignment.
type AssignmentResponse struct {
	AssignmentID string          `json:"assignmentID"`
	StructureID  string          `json:"structureID"`
	StudentID    string          `json:"studentID"`
	AmountDue    decimal.Decimal `json:"amountDue"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Balance      decimal.Decimal `json:"balance"`
	DueDate      time.Time       `json:"dueDate"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToAssignmentResponse converts a domain assignment to its response DTO.
func ToAssignmentResponse(a *domain.StudentFeeAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		StructureID:  a.StructureID,
		StudentID:    a.StudentID,
		AmountDue:    a.AmountDue,
		AmountPaid:   a.AmountPaid,
		Balance:      a.Balance(),
		DueDate:      a.DueDate,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

// ToAssignmentResponses converts a slice of domain assignments to DTOs.
func ToAssignmentResponses(as []domain.StudentFeeAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(as))
	for i := range as {
		responses[i] = ToAssignmentResponse(&as[i])
	}
	return responses
}
