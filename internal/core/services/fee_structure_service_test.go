package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/core/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
)

type FeeStructureServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStructureRepository
	service  portssvc.FeeStructureSvcFacade
}

func (suite *FeeStructureServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStructureRepository)
	suite.service = services.NewFeeStructureService(suite.mockRepo)
}

func (suite *FeeStructureServiceTestSuite) validCreateRequest() dto.CreateFeeStructureRequest {
	return dto.CreateFeeStructureRequest{
		Class:        "5",
		Section:      "A",
		AcademicYear: "2025-26",
		FeeType:      domain.FeeTuition,
		Amount:       decimal.NewFromInt(1500),
		Frequency:    domain.FrequencyMonthly,
		DueDate:      time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Description:  "Term 1 tuition",
	}
}

func (suite *FeeStructureServiceTestSuite) TestCreateStructure_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.validCreateRequest()

	suite.mockRepo.On("SaveStructure", ctx, mock.MatchedBy(func(s domain.FeeStructure) bool {
		return s.Class == req.Class && s.FeeType == req.FeeType && s.Amount.Equal(req.Amount) &&
			s.Frequency == req.Frequency && s.CreatedBy == creatorUserID
	})).Return(nil).Once()

	structure, err := suite.service.CreateStructure(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(structure)
	suite.NotEmpty(structure.StructureID)
	suite.True(structure.Amount.Equal(req.Amount))
	suite.Equal(creatorUserID, structure.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestCreateStructure_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Amount = decimal.Zero

	structure, err := suite.service.CreateStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(structure)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveStructure", mock.Anything, mock.Anything)
}

func (suite *FeeStructureServiceTestSuite) TestCreateStructure_NegativeAmount() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Amount = decimal.NewFromInt(-100)

	structure, err := suite.service.CreateStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(structure)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FeeStructureServiceTestSuite) TestCreateStructure_UnknownFeeType() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.FeeType = "HOSTEL"

	structure, err := suite.service.CreateStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(structure)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FeeStructureServiceTestSuite) TestCreateStructure_UnknownFrequency() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Frequency = "WEEKLY"

	structure, err := suite.service.CreateStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(structure)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FeeStructureServiceTestSuite) TestGetStructureByID_Success() {
	ctx := context.Background()
	structureID := uuid.NewString()
	expected := &domain.FeeStructure{StructureID: structureID, FeeType: domain.FeeTransport}

	suite.mockRepo.On("FindStructureByID", ctx, structureID).Return(expected, nil).Once()

	structure, err := suite.service.GetStructureByID(ctx, structureID)

	suite.Require().NoError(err)
	suite.Equal(expected, structure)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestGetStructureByID_NotFound() {
	ctx := context.Background()
	structureID := uuid.NewString()

	suite.mockRepo.On("FindStructureByID", ctx, structureID).Return(nil, apperrors.ErrNotFound).Once()

	structure, err := suite.service.GetStructureByID(ctx, structureID)

	suite.Require().Error(err)
	suite.Nil(structure)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestUpdateStructure_Success() {
	ctx := context.Background()
	structureID := uuid.NewString()
	updaterUserID := uuid.NewString()
	existing := &domain.FeeStructure{
		StructureID: structureID,
		FeeType:     domain.FeeTuition,
		Amount:      decimal.NewFromInt(1500),
		DueDate:     time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Description: "old",
	}
	newAmount := decimal.NewFromInt(1800)
	newDesc := "revised"
	req := dto.UpdateFeeStructureRequest{Amount: &newAmount, Description: &newDesc}

	suite.mockRepo.On("FindStructureByID", ctx, structureID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateStructure", ctx, mock.MatchedBy(func(s domain.FeeStructure) bool {
		return s.Amount.Equal(newAmount) && s.Description == newDesc && s.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	structure, err := suite.service.UpdateStructure(ctx, structureID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.True(structure.Amount.Equal(newAmount))
	suite.Equal(newDesc, structure.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestUpdateStructure_NonPositiveAmount() {
	ctx := context.Background()
	structureID := uuid.NewString()
	existing := &domain.FeeStructure{StructureID: structureID, Amount: decimal.NewFromInt(1500)}
	badAmount := decimal.Zero
	req := dto.UpdateFeeStructureRequest{Amount: &badAmount}

	suite.mockRepo.On("FindStructureByID", ctx, structureID).Return(existing, nil).Once()

	structure, err := suite.service.UpdateStructure(ctx, structureID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(structure)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateStructure", mock.Anything, mock.Anything)
}

func (suite *FeeStructureServiceTestSuite) TestDeleteStructure_Success() {
	ctx := context.Background()
	structureID := uuid.NewString()

	suite.mockRepo.On("DeleteStructure", ctx, structureID).Return(nil).Once()

	err := suite.service.DeleteStructure(ctx, structureID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestDeleteStructure_WithAssignments() {
	ctx := context.Background()
	structureID := uuid.NewString()

	suite.mockRepo.On("DeleteStructure", ctx, structureID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteStructure(ctx, structureID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestListStructures_Success() {
	ctx := context.Background()
	params := dto.ListStructuresParams{Class: "5", FeeType: domain.FeeTuition}
	expected := []domain.FeeStructure{{StructureID: uuid.NewString()}}

	suite.mockRepo.On("ListStructures", ctx, mock.Anything).Return(expected, nil).Once()

	structures, err := suite.service.ListStructures(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(expected, structures)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestListStructures_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListStructures", ctx, mock.Anything).Return(nil, nil).Once()

	structures, err := suite.service.ListStructures(ctx, dto.ListStructuresParams{})

	suite.Require().NoError(err)
	suite.NotNil(structures)
	suite.Empty(structures)
}

func (suite *FeeStructureServiceTestSuite) TestListStructures_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListStructures", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	structures, err := suite.service.ListStructures(ctx, dto.ListStructuresParams{})

	suite.Require().Error(err)
	suite.Nil(structures)
	suite.ErrorIs(err, assert.AnError)
}

func TestFeeStructureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeeStructureServiceTestSuite))
}
