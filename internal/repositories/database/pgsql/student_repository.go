package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	"github.com/schoolworks/fees_ledger_app/internal/models"
	"github.com/schoolworks/fees_ledger_app/internal/utils/mapping"
)

type PgxStudentRepository struct {
	BaseRepository
}

// newPgxStudentRepository creates a new repository for the student registry.
func newPgxStudentRepository(pool *pgxpool.Pool) portsrepo.StudentRepositoryFacade {
	return &PgxStudentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StudentRepositoryFacade = (*PgxStudentRepository)(nil)

const studentColumns = `student_id, name, class, section, admission_no, created_at, created_by, last_updated_at, last_updated_by`

// SaveStudent inserts a new student.
func (r *PgxStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)

	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StudentID,
		m.Name,
		m.Class,
		m.Section,
		m.AdmissionNo,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: admission number %s already registered", apperrors.ErrDuplicate, m.AdmissionNo)
		}
		return apperrors.NewAppError(500, "failed to save student "+m.StudentID, translateErr(err))
	}
	return nil
}

// FindStudentByID retrieves a student by its ID.
func (r *PgxStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`

	var m models.Student
	err := r.Pool.QueryRow(ctx, query, studentID).Scan(
		&m.StudentID,
		&m.Name,
		&m.Class,
		&m.Section,
		&m.AdmissionNo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find student by ID "+studentID, translateErr(err))
	}

	d := mapping.ToDomainStudent(m)
	return &d, nil
}

// ListStudents retrieves students, optionally filtered by class and section.
func (r *PgxStudentRepository) ListStudents(ctx context.Context, class, section string) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`

	clauses := ""
	args := []interface{}{}
	addClause := func(column, value string) {
		if value == "" {
			return
		}
		if clauses == "" {
			clauses = " WHERE "
		} else {
			clauses += " AND "
		}
		args = append(args, value)
		clauses += column + " = $" + strconv.Itoa(len(args))
	}
	addClause("class", class)
	addClause("section", section)

	query += clauses + ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query students", translateErr(err))
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		var m models.Student
		err := rows.Scan(
			&m.StudentID,
			&m.Name,
			&m.Class,
			&m.Section,
			&m.AdmissionNo,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan student row", err)
		}
		students = append(students, mapping.ToDomainStudent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating student rows", translateErr(err))
	}

	return students, nil
}
