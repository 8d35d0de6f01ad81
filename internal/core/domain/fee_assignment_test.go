package domain_test

import (
	"testing"
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)
	due := decimal.NewFromInt(5000)

	tests := []struct {
		name    string
		paid    decimal.Decimal
		dueDate time.Time
		want    domain.FeeStatus
	}{
		{
			name:    "nothing paid, not yet due",
			paid:    decimal.Zero,
			dueDate: future,
			want:    domain.StatusPending,
		},
		{
			name:    "partially paid, not yet due",
			paid:    decimal.NewFromInt(2000),
			dueDate: future,
			want:    domain.StatusPartial,
		},
		{
			name:    "one unit short of the balance",
			paid:    decimal.NewFromInt(4999),
			dueDate: future,
			want:    domain.StatusPartial,
		},
		{
			name:    "exactly paid off",
			paid:    decimal.NewFromInt(5000),
			dueDate: future,
			want:    domain.StatusPaid,
		},
		{
			name:    "paid off after the due date stays paid",
			paid:    decimal.NewFromInt(5000),
			dueDate: past,
			want:    domain.StatusPaid,
		},
		{
			name:    "nothing paid, past due",
			paid:    decimal.Zero,
			dueDate: past,
			want:    domain.StatusOverdue,
		},
		{
			name:    "partially paid, past due",
			paid:    decimal.NewFromInt(2000),
			dueDate: past,
			want:    domain.StatusOverdue,
		},
		{
			name:    "due date equal to now is not yet overdue",
			paid:    decimal.Zero,
			dueDate: now,
			want:    domain.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveStatus(due, tt.paid, tt.dueDate, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudentFeeAssignment_Balance(t *testing.T) {
	a := domain.StudentFeeAssignment{
		AmountDue:  decimal.NewFromInt(5000),
		AmountPaid: decimal.NewFromInt(2000),
	}
	assert.True(t, a.Balance().Equal(decimal.NewFromInt(3000)))

	a.AmountPaid = decimal.NewFromInt(5000)
	assert.True(t, a.Balance().IsZero())
}
