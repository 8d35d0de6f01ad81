package services

import (
	"context"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
)

// StudentSvcFacade exposes the minimal student registry.
type StudentSvcFacade interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest, creatorUserID string) (*domain.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, class, section string) ([]domain.Student, error)
}
