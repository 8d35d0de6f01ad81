package repositories

import (
	"context"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
)

// StudentRepositoryFacade defines the minimal student registry operations the
// fee ledger needs.
type StudentRepositoryFacade interface {
	// SaveStudent inserts a new student. Duplicate admission numbers fail with ErrDuplicate.
	SaveStudent(ctx context.Context, student domain.Student) error

	// FindStudentByID retrieves a student by its unique identifier.
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)

	// ListStudents retrieves students, optionally filtered by class and section.
	ListStudents(ctx context.Context, class, section string) ([]domain.Student, error)
}
