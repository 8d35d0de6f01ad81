package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
)

// feeStructureService implements the fee-structure catalog on top of the
// structure repository.
type feeStructureService struct {
	BaseService
	structureRepo portsrepo.FeeStructureRepositoryFacade
}

// NewFeeStructureService creates a new fee structure service.
func NewFeeStructureService(structureRepo portsrepo.FeeStructureRepositoryFacade) portssvc.FeeStructureSvcFacade {
	return &feeStructureService{structureRepo: structureRepo}
}

func (s *feeStructureService) CreateStructure(ctx context.Context, req dto.CreateFeeStructureRequest, creatorUserID string) (*domain.FeeStructure, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	if !domain.ValidFeeType(req.FeeType) {
		return nil, fmt.Errorf("%w: unknown fee type %q", apperrors.ErrValidation, req.FeeType)
	}
	if !domain.ValidFrequency(req.Frequency) {
		return nil, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, req.Frequency)
	}

	now := time.Now()
	structure := domain.FeeStructure{
		StructureID:  uuid.NewString(),
		Class:        req.Class,
		Section:      req.Section,
		AcademicYear: req.AcademicYear,
		FeeType:      req.FeeType,
		Amount:       req.Amount,
		Frequency:    req.Frequency,
		DueDate:      req.DueDate,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.structureRepo.SaveStructure(ctx, structure); err != nil {
		s.LogError(ctx, err, "Failed to save fee structure", slog.String("structure_id", structure.StructureID))
		return nil, err
	}

	s.LogInfo(ctx, "Fee structure created", slog.String("structure_id", structure.StructureID), slog.String("fee_type", string(structure.FeeType)))
	return &structure, nil
}

func (s *feeStructureService) GetStructureByID(ctx context.Context, structureID string) (*domain.FeeStructure, error) {
	structure, err := s.structureRepo.FindStructureByID(ctx, structureID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fee structure", slog.String("structure_id", structureID))
		}
		return nil, err
	}
	return structure, nil
}

// UpdateStructure edits the mutable fields of a structure. Already-issued
// assignments keep their snapshotted amount and due date.
func (s *feeStructureService) UpdateStructure(ctx context.Context, structureID string, req dto.UpdateFeeStructureRequest, updaterUserID string) (*domain.FeeStructure, error) {
	structure, err := s.structureRepo.FindStructureByID(ctx, structureID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fee structure for update", slog.String("structure_id", structureID))
		}
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
		}
		structure.Amount = *req.Amount
	}
	if req.DueDate != nil {
		structure.DueDate = *req.DueDate
	}
	if req.Description != nil {
		structure.Description = *req.Description
	}
	structure.LastUpdatedAt = time.Now()
	structure.LastUpdatedBy = updaterUserID

	if err := s.structureRepo.UpdateStructure(ctx, *structure); err != nil {
		s.LogError(ctx, err, "Failed to update fee structure", slog.String("structure_id", structureID))
		return nil, err
	}

	s.LogInfo(ctx, "Fee structure updated", slog.String("structure_id", structureID))
	return structure, nil
}

// DeleteStructure removes a structure that has no assignments. The FK on the
// ledger blocks deletion otherwise and the repository surfaces ErrConflict.
func (s *feeStructureService) DeleteStructure(ctx context.Context, structureID string) error {
	err := s.structureRepo.DeleteStructure(ctx, structureID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete fee structure", slog.String("structure_id", structureID))
		}
		return err
	}
	s.LogInfo(ctx, "Fee structure deleted", slog.String("structure_id", structureID))
	return nil
}

func (s *feeStructureService) ListStructures(ctx context.Context, params dto.ListStructuresParams) ([]domain.FeeStructure, error) {
	if params.FeeType != "" && !domain.ValidFeeType(params.FeeType) {
		return nil, fmt.Errorf("%w: unknown fee type %q", apperrors.ErrValidation, params.FeeType)
	}
	filter := portsrepo.StructureFilter{
		Class:        params.Class,
		Section:      params.Section,
		AcademicYear: params.AcademicYear,
		FeeType:      params.FeeType,
	}
	structures, err := s.structureRepo.ListStructures(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fee structures")
		return nil, fmt.Errorf("failed to list fee structures: %w", err)
	}
	if structures == nil {
		return []domain.FeeStructure{}, nil
	}
	return structures, nil
}
