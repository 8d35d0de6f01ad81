package services

import (
	"context"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
)

// FeeStructureSvcFacade exposes the fee-structure catalog operations.
type FeeStructureSvcFacade interface {
	// CreateStructure validates and persists a new fee structure.
	CreateStructure(ctx context.Context, req dto.CreateFeeStructureRequest, creatorUserID string) (*domain.FeeStructure, error)

	// GetStructureByID retrieves a single fee structure.
	GetStructureByID(ctx context.Context, structureID string) (*domain.FeeStructure, error)

	// UpdateStructure edits the amount, due date and/or description of a structure.
	UpdateStructure(ctx context.Context, structureID string, req dto.UpdateFeeStructureRequest, updaterUserID string) (*domain.FeeStructure, error)

	// DeleteStructure hard-deletes a structure without assignments.
	DeleteStructure(ctx context.Context, structureID string) error

	// ListStructures retrieves structures matching the optional filters.
	ListStructures(ctx context.Context, params dto.ListStructuresParams) ([]domain.FeeStructure, error)
}
