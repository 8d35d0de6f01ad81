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

type PgxFeeStructureRepository struct {
	BaseRepository
}

// newPgxFeeStructureRepository creates a new repository for fee structure data.
func newPgxFeeStructureRepository(pool *pgxpool.Pool) portsrepo.FeeStructureRepositoryFacade {
	return &PgxFeeStructureRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFeeStructureRepository implements the facade
var _ portsrepo.FeeStructureRepositoryFacade = (*PgxFeeStructureRepository)(nil)

const feeStructureColumns = `structure_id, class, section, academic_year, fee_type, amount, frequency, due_date, description, created_at, created_by, last_updated_at, last_updated_by`

// SaveStructure inserts a new fee structure.
func (r *PgxFeeStructureRepository) SaveStructure(ctx context.Context, structure domain.FeeStructure) error {
	m := mapping.ToModelFeeStructure(structure)

	query := `
		INSERT INTO fee_structures (` + feeStructureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StructureID,
		m.Class,
		m.Section,
		m.AcademicYear,
		m.FeeType,
		m.Amount,
		m.Frequency,
		m.DueDate,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: structure with ID %s already exists", apperrors.ErrDuplicate, m.StructureID)
		}
		return apperrors.NewAppError(500, "failed to save fee structure "+m.StructureID, translateErr(err))
	}
	return nil
}

// FindStructureByID retrieves a fee structure by its ID.
func (r *PgxFeeStructureRepository) FindStructureByID(ctx context.Context, structureID string) (*domain.FeeStructure, error) {
	query := `SELECT ` + feeStructureColumns + ` FROM fee_structures WHERE structure_id = $1;`

	var m models.FeeStructure
	err := r.Pool.QueryRow(ctx, query, structureID).Scan(
		&m.StructureID,
		&m.Class,
		&m.Section,
		&m.AcademicYear,
		&m.FeeType,
		&m.Amount,
		&m.Frequency,
		&m.DueDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fee structure by ID "+structureID, translateErr(err))
	}

	d := mapping.ToDomainFeeStructure(m)
	return &d, nil
}

// UpdateStructure persists edits to an existing structure.
func (r *PgxFeeStructureRepository) UpdateStructure(ctx context.Context, structure domain.FeeStructure) error {
	m := mapping.ToModelFeeStructure(structure)

	query := `
		UPDATE fee_structures
		SET amount = $2,
		    due_date = $3,
		    description = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE structure_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.StructureID,
		m.Amount,
		m.DueDate,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update fee structure "+m.StructureID, translateErr(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("fee structure " + m.StructureID + " not found for update")
	}
	return nil
}

// DeleteStructure hard-deletes a structure. The FK from assignments is
// RESTRICT, so structures that were already assigned fail with ErrConflict.
func (r *PgxFeeStructureRepository) DeleteStructure(ctx context.Context, structureID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM fee_structures WHERE structure_id = $1;`, structureID)
	if err != nil {
		if isFKViolation(err) {
			return fmt.Errorf("%w: structure %s still has assignments", apperrors.ErrConflict, structureID)
		}
		return apperrors.NewAppError(500, "failed to delete fee structure "+structureID, translateErr(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("fee structure " + structureID + " not found for delete")
	}
	return nil
}

// ListStructures retrieves fee structures matching the filter, newest first.
func (r *PgxFeeStructureRepository) ListStructures(ctx context.Context, filter portsrepo.StructureFilter) ([]domain.FeeStructure, error) {
	query := `SELECT ` + feeStructureColumns + ` FROM fee_structures`

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
	addClause("class", filter.Class)
	addClause("section", filter.Section)
	addClause("academic_year", filter.AcademicYear)
	addClause("fee_type", string(filter.FeeType))

	query += clauses + ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fee structures", translateErr(err))
	}
	defer rows.Close()

	structures := []domain.FeeStructure{}
	for rows.Next() {
		var m models.FeeStructure
		err := rows.Scan(
			&m.StructureID,
			&m.Class,
			&m.Section,
			&m.AcademicYear,
			&m.FeeType,
			&m.Amount,
			&m.Frequency,
			&m.DueDate,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fee structure row", err)
		}
		structures = append(structures, mapping.ToDomainFeeStructure(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fee structure rows", translateErr(err))
	}

	return structures, nil
}
