package receipt_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/schoolworks/fees_ledger_app/internal/utils/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber_Format(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	num, err := receipt.NewNumber(date)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^RCP-202506-\d{4}$`), num)
}

func TestNewNumber_PrefixFollowsPaymentDate(t *testing.T) {
	num, err := receipt.NewNumber(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, num, "RCP-202412-")
}
