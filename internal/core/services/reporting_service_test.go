package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestCollectionSummary() {
	ctx := context.Background()
	filter := portsrepo.CollectionFilter{FeeType: domain.FeeTuition}

	suite.mockRepo.On("GetTotalCollected", ctx, filter).Return(decimal.NewFromInt(42000), nil).Once()
	suite.mockRepo.On("GetTotalPending", ctx, filter).Return(decimal.NewFromInt(18000), nil).Once()
	suite.mockRepo.On("GetOverdueCount", ctx, filter).Return(7, nil).Once()

	summary, err := suite.service.CollectionSummary(ctx, filter)

	suite.Require().NoError(err)
	suite.True(summary.TotalCollected.Equal(decimal.NewFromInt(42000)))
	suite.True(summary.TotalPending.Equal(decimal.NewFromInt(18000)))
	suite.Equal(7, summary.OverdueCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCollectionSummary_RepoError() {
	ctx := context.Background()
	filter := portsrepo.CollectionFilter{}

	suite.mockRepo.On("GetTotalCollected", ctx, filter).Return(decimal.Zero, assert.AnError).Once()

	summary, err := suite.service.CollectionSummary(ctx, filter)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetTotalPending", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPaymentsByMonth() {
	ctx := context.Background()
	payments := []domain.Payment{
		{PaymentID: "p1", Amount: decimal.NewFromInt(600)},
		{PaymentID: "p2", Amount: decimal.NewFromInt(900)},
	}

	suite.mockRepo.On("GetPaymentsByMonth", ctx, 2025, time.June).Return(payments, nil).Once()

	report, err := suite.service.PaymentsByMonth(ctx, 2025, time.June)

	suite.Require().NoError(err)
	suite.Equal("2025-06", report.Month)
	suite.Len(report.Payments, 2)
	suite.True(report.Total.Equal(decimal.NewFromInt(1500)))
}

func (suite *ReportingServiceTestSuite) TestPaymentsByMonth_EmptyMonth() {
	ctx := context.Background()

	suite.mockRepo.On("GetPaymentsByMonth", ctx, 2025, time.January).Return(nil, nil).Once()

	report, err := suite.service.PaymentsByMonth(ctx, 2025, time.January)

	suite.Require().NoError(err)
	suite.Equal("2025-01", report.Month)
	suite.NotNil(report.Payments)
	suite.Empty(report.Payments)
	suite.True(report.Total.IsZero())
}

func (suite *ReportingServiceTestSuite) TestCollectionByFeeType() {
	ctx := context.Background()
	filter := portsrepo.CollectionFilter{}
	rows := []domain.FeeTypeCollection{
		{FeeType: domain.FeeTuition, Collected: decimal.NewFromInt(30000), Payments: 20},
		{FeeType: domain.FeeTransport, Collected: decimal.NewFromInt(8000), Payments: 12},
	}

	suite.mockRepo.On("GetCollectionByFeeType", ctx, filter).Return(rows, nil).Once()

	result, err := suite.service.CollectionByFeeType(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(rows, result)
}

func (suite *ReportingServiceTestSuite) TestTotalPending() {
	ctx := context.Background()
	filter := portsrepo.CollectionFilter{FeeType: domain.FeeLab}

	suite.mockRepo.On("GetTotalPending", ctx, filter).Return(decimal.NewFromInt(2500), nil).Once()

	total, err := suite.service.TotalPending(ctx, filter)

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(2500)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
