package dto

import (
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
)

// CreateStudentRequest defines the payload for registering a student.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	Class       string `json:"class" binding:"required"`
	Section     string `json:"section" binding:"required"`
	AdmissionNo string `json:"admissionNo" binding:"required"`
}

// StudentResponse defines the data returned for a student.
type StudentResponse struct {
	StudentID   string    `json:"studentID"`
	Name        string    `json:"name"`
	Class       string    `json:"class"`
	Section     string    `json:"section"`
	AdmissionNo string    `json:"admissionNo"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToStudentResponse converts a domain.Student to its response DTO.
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID:   s.StudentID,
		Name:        s.Name,
		Class:       s.Class,
		Section:     s.Section,
		AdmissionNo: s.AdmissionNo,
		CreatedAt:   s.CreatedAt,
	}
}

// ToStudentResponses converts a slice of domain students to DTOs.
func ToStudentResponses(ss []domain.Student) []StudentResponse {
	responses := make([]StudentResponse, len(ss))
	for i := range ss {
		responses[i] = ToStudentResponse(&ss[i])
	}
	return responses
}
