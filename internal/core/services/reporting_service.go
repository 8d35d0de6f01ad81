package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
)

// reportingService implements the read-only rollups. Aggregates read committed
// state only; a report taken while payments land is a consistent snapshot of
// what had committed at query time.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

func (s *reportingService) TotalCollected(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error) {
	total, err := s.reportingRepo.GetTotalCollected(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute total collected")
		return decimal.Zero, fmt.Errorf("failed to compute total collected: %w", err)
	}
	return total, nil
}

func (s *reportingService) TotalPending(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error) {
	total, err := s.reportingRepo.GetTotalPending(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute total pending")
		return decimal.Zero, fmt.Errorf("failed to compute total pending: %w", err)
	}
	return total, nil
}

func (s *reportingService) OverdueCount(ctx context.Context, filter portsrepo.CollectionFilter) (int, error) {
	count, err := s.reportingRepo.GetOverdueCount(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count overdue assignments")
		return 0, fmt.Errorf("failed to count overdue assignments: %w", err)
	}
	return count, nil
}

func (s *reportingService) CollectionSummary(ctx context.Context, filter portsrepo.CollectionFilter) (*domain.CollectionSummary, error) {
	collected, err := s.TotalCollected(ctx, filter)
	if err != nil {
		return nil, err
	}
	pending, err := s.TotalPending(ctx, filter)
	if err != nil {
		return nil, err
	}
	overdue, err := s.OverdueCount(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.CollectionSummary{
		TotalCollected: collected,
		TotalPending:   pending,
		OverdueCount:   overdue,
	}, nil
}

func (s *reportingService) PaymentsByMonth(ctx context.Context, year int, month time.Month) (*domain.MonthlyCollectionReport, error) {
	payments, err := s.reportingRepo.GetPaymentsByMonth(ctx, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly payments")
		return nil, fmt.Errorf("failed to load payments for %d-%02d: %w", year, month, err)
	}

	total := decimal.Zero
	for i := range payments {
		total = total.Add(payments[i].Amount)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}

	return &domain.MonthlyCollectionReport{
		Month:    fmt.Sprintf("%04d-%02d", year, int(month)),
		Payments: payments,
		Total:    total,
	}, nil
}

func (s *reportingService) CollectionByFeeType(ctx context.Context, filter portsrepo.CollectionFilter) ([]domain.FeeTypeCollection, error) {
	rows, err := s.reportingRepo.GetCollectionByFeeType(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute collection by fee type")
		return nil, fmt.Errorf("failed to compute collection by fee type: %w", err)
	}
	if rows == nil {
		return []domain.FeeTypeCollection{}, nil
	}
	return rows, nil
}
