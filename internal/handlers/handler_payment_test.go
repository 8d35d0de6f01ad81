package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/schoolworks/fees_ledger_app/internal/handlers"
	"github.com/schoolworks/fees_ledger_app/internal/middleware"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actorID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByAssignment(ctx context.Context, assignmentID string) ([]domain.Payment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPaymentService
	jwtSecret   string
}

func (suite *PaymentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fees-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockPaymentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPaymentRoutes(v1, suite.mockService)
}

func (suite *PaymentHandlerTestSuite) postPayment(body any, token string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_Success() {
	actorID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		AssignmentID: uuid.NewString(),
		StudentID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(600),
		Method:       domain.MethodUPI,
		Reference:    "upi-123",
	}
	expected := &domain.Payment{
		PaymentID:     uuid.NewString(),
		ReceiptNumber: "RCP-202506-0042",
		AssignmentID:  req.AssignmentID,
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		Method:        req.Method,
		PaymentDate:   time.Now(),
		RecordedBy:    actorID,
	}

	suite.mockService.On("RecordPayment",
		mock.Anything,
		mock.MatchedBy(func(r dto.RecordPaymentRequest) bool {
			return r.AssignmentID == req.AssignmentID && r.Amount.Equal(req.Amount)
		}),
		actorID,
	).Return(expected, nil).Once()

	w := suite.postPayment(req, suite.generateTestToken(actorID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ReceiptNumber, resp.ReceiptNumber)
	suite.Equal(actorID, resp.RecordedBy)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_Unauthorized() {
	req := dto.RecordPaymentRequest{
		AssignmentID: uuid.NewString(),
		StudentID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(100),
		Method:       domain.MethodCash,
	}

	w := suite.postPayment(req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_Overpayment() {
	actorID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		AssignmentID: uuid.NewString(),
		StudentID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(9999),
		Method:       domain.MethodCash,
	}

	suite.mockService.On("RecordPayment", mock.Anything, mock.AnythingOfType("dto.RecordPaymentRequest"), actorID).
		Return(nil, apperrors.ErrOverpayment).Once()

	w := suite.postPayment(req, suite.generateTestToken(actorID))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_AssignmentNotFound() {
	actorID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		AssignmentID: uuid.NewString(),
		StudentID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(100),
		Method:       domain.MethodCash,
	}

	suite.mockService.On("RecordPayment", mock.Anything, mock.AnythingOfType("dto.RecordPaymentRequest"), actorID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postPayment(req, suite.generateTestToken(actorID))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_StoreTimeout() {
	actorID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		AssignmentID: uuid.NewString(),
		StudentID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(100),
		Method:       domain.MethodCash,
	}

	// The repository reports statement_timeout cancellations as ErrTimeout;
	// callers should see 504 and know a retry is safe.
	suite.mockService.On("RecordPayment", mock.Anything, mock.AnythingOfType("dto.RecordPaymentRequest"), actorID).
		Return(nil, fmt.Errorf("failed to query assignment: %w", apperrors.ErrTimeout)).Once()

	w := suite.postPayment(req, suite.generateTestToken(actorID))

	suite.Equal(http.StatusGatewayTimeout, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_MissingBodyFields() {
	actorID := uuid.NewString()

	w := suite.postPayment(map[string]string{"studentID": uuid.NewString()}, suite.generateTestToken(actorID))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestGetPaymentByID_Success() {
	actorID := uuid.NewString()
	expected := &domain.Payment{
		PaymentID:     uuid.NewString(),
		ReceiptNumber: "RCP-202506-0099",
		Amount:        decimal.NewFromInt(750),
		Method:        domain.MethodCheque,
	}

	suite.mockService.On("GetPaymentByID", mock.Anything, expected.PaymentID).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments/"+expected.PaymentID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(actorID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ReceiptNumber, resp.ReceiptNumber)
}

func (suite *PaymentHandlerTestSuite) TestGetPaymentByID_NotFound() {
	actorID := uuid.NewString()
	paymentID := uuid.NewString()

	suite.mockService.On("GetPaymentByID", mock.Anything, paymentID).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payments/"+paymentID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(actorID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
