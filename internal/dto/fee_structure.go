package dto

import (
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFeeStructureRequest defines the payload for creating a fee structure.
type CreateFeeStructureRequest struct {
	Class        string          `json:"class" binding:"required"`
	Section      string          `json:"section" binding:"required"`
	AcademicYear string          `json:"academicYear" binding:"required"`
	FeeType      domain.FeeType  `json:"feeType" binding:"required,feetype"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Frequency    domain.Frequency `json:"frequency" binding:"required,frequency"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	Description  string          `json:"description"`
}

// UpdateFeeStructureRequest defines the editable fields of a fee structure.
// Nil fields are left unchanged.
type UpdateFeeStructureRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"dueDate"`
	Description *string          `json:"description"`
}

// ListStructuresParams carries the optional catalog filters.
type ListStructuresParams struct {
	Class        string         `form:"class"`
	Section      string         `form:"section"`
	AcademicYear string         `form:"academicYear"`
	FeeType      domain.FeeType `form:"feeType"`
}

// FeeStructureResponse defines the data returned for a fee structure.
type FeeStructureResponse struct {
	StructureID  string          `json:"structureID"`
	Class        string          `json:"class"`
	Section      string          `json:"section"`
	AcademicYear string          `json:"academicYear"`
	FeeType      string          `json:"feeType"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency"`
	DueDate      time.Time       `json:"dueDate"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToFeeStructureResponse converts a domain.FeeStructure to its response DTO.
func ToFeeStructureResponse(s *domain.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		StructureID:  s.StructureID,
		Class:        s.Class,
		Section:      s.Section,
		AcademicYear: s.AcademicYear,
		FeeType:      string(s.FeeType),
		Amount:       s.Amount,
		Frequency:    string(s.Frequency),
		DueDate:      s.DueDate,
		Description:  s.Description,
		CreatedAt:    s.CreatedAt,
		CreatedBy:    s.CreatedBy,
	}
}

// ToFeeStructureResponses converts a slice of domain structures to DTOs.
func ToFeeStructureResponses(ss []domain.FeeStructure) []FeeStructureResponse {
	responses := make([]FeeStructureResponse, len(ss))
	for i := range ss {
		responses[i] = ToFeeStructureResponse(&ss[i])
	}
	return responses
}
