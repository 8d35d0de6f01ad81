package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
)

// studentService implements the minimal student registry.
type studentService struct {
	BaseService
	studentRepo portsrepo.StudentRepositoryFacade
}

// NewStudentService creates a new student service.
func NewStudentService(studentRepo portsrepo.StudentRepositoryFacade) portssvc.StudentSvcFacade {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest, creatorUserID string) (*domain.Student, error) {
	now := time.Now()
	student := domain.Student{
		StudentID:   uuid.NewString(),
		Name:        req.Name,
		Class:       req.Class,
		Section:     req.Section,
		AdmissionNo: req.AdmissionNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.studentRepo.SaveStudent(ctx, student); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save student", slog.String("admission_no", req.AdmissionNo))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Student registered", slog.String("student_id", student.StudentID))
	return &student, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find student", slog.String("student_id", studentID))
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context, class, section string) ([]domain.Student, error) {
	students, err := s.studentRepo.ListStudents(ctx, class, section)
	if err != nil {
		s.LogError(ctx, err, "Failed to list students")
		return nil, err
	}
	if students == nil {
		return []domain.Student{}, nil
	}
	return students, nil
}
