package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
)

func TestTranslateErr(t *testing.T) {
	testCases := []struct {
		name        string
		input       error
		wantTimeout bool
	}{
		{
			name:        "nil passes through",
			input:       nil,
			wantTimeout: false,
		},
		{
			name:        "context deadline maps to timeout",
			input:       fmt.Errorf("query failed: %w", context.DeadlineExceeded),
			wantTimeout: true,
		},
		{
			name:        "statement_timeout cancellation maps to timeout",
			input:       &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"},
			wantTimeout: true,
		},
		{
			name:        "admin shutdown maps to timeout",
			input:       &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"},
			wantTimeout: true,
		},
		{
			name:        "unique violation passes through untouched",
			input:       &pgconn.PgError{Code: pgUniqueViolation},
			wantTimeout: false,
		},
		{
			name:        "plain error passes through untouched",
			input:       errors.New("connection refused"),
			wantTimeout: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateErr(tc.input)
			assert.Equal(t, tc.wantTimeout, errors.Is(got, apperrors.ErrTimeout))
			if !tc.wantTimeout {
				assert.Equal(t, tc.input, got)
			}
		})
	}
}

func TestTranslateErr_TimeoutSurvivesAppErrorWrap(t *testing.T) {
	cause := &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"}
	wrapped := apperrors.NewAppError(500, "failed to query payments", translateErr(cause))
	assert.True(t, errors.Is(wrapped, apperrors.ErrTimeout))
}
