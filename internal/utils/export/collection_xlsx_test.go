package export_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/schoolworks/fees_ledger_app/internal/utils/export"
)

func TestBuildMonthlyCollectionXLSX(t *testing.T) {
	report := &domain.MonthlyCollectionReport{
		Month: "2025-06",
		Payments: []domain.Payment{
			{
				PaymentID:     "p1",
				ReceiptNumber: "RCP-202506-0001",
				StudentID:     "s1",
				AssignmentID:  "a1",
				Amount:        decimal.NewFromInt(600),
				Method:        domain.MethodUPI,
			},
			{
				PaymentID:     "p2",
				ReceiptNumber: "RCP-202506-0002",
				StudentID:     "s2",
				AssignmentID:  "a2",
				Amount:        decimal.NewFromInt(900),
				Method:        domain.MethodCash,
			},
		},
		Total: decimal.NewFromInt(1500),
	}

	data, err := export.BuildMonthlyCollectionXLSX(report)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	month, err := f.GetCellValue("collections", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06", month)

	total, err := f.GetCellValue("collections", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1500", total)

	firstReceipt, err := f.GetCellValue("collections", "A7")
	require.NoError(t, err)
	assert.Equal(t, "RCP-202506-0001", firstReceipt)
}

func TestBuildMonthlyCollectionXLSX_EmptyMonth(t *testing.T) {
	report := &domain.MonthlyCollectionReport{
		Month:    "2025-01",
		Payments: []domain.Payment{},
		Total:    decimal.Zero,
	}

	data, err := export.BuildMonthlyCollectionXLSX(report)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
