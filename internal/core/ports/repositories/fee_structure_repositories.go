package repositories

import (
	"context"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
)

// StructureFilter narrows ListStructures results. Zero values mean "any".
type StructureFilter struct {
	Class        string
	Section      string
	AcademicYear string
	FeeType      domain.FeeType
}

// FeeStructureReader defines read operations for fee structure data.
type FeeStructureReader interface {
	// FindStructureByID retrieves a fee structure by its unique identifier.
	FindStructureByID(ctx context.Context, structureID string) (*domain.FeeStructure, error)

	// ListStructures retrieves fee structures matching the filter, newest first.
	ListStructures(ctx context.Context, filter StructureFilter) ([]domain.FeeStructure, error)
}

// FeeStructureWriter defines write operations for fee structure data.
type FeeStructureWriter interface {
	// SaveStructure inserts a new fee structure.
	SaveStructure(ctx context.Context, structure domain.FeeStructure) error

	// UpdateStructure persists edits to an existing structure.
	UpdateStructure(ctx context.Context, structure domain.FeeStructure) error

	// DeleteStructure hard-deletes a structure. Structures that still have
	// assignments are protected by the FK and fail with ErrConflict.
	DeleteStructure(ctx context.Context, structureID string) error
}

// FeeStructureRepositoryFacade combines all fee-structure repository interfaces.
type FeeStructureRepositoryFacade interface {
	FeeStructureReader
	FeeStructureWriter
}
