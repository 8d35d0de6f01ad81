package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/schoolworks/fees_ledger_app/internal/middleware"
)

// feeAssignmentHandler handles HTTP requests for the assignment ledger.
type feeAssignmentHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newFeeAssignmentHandler(ls portssvc.LedgerSvcFacade, ps portssvc.PaymentSvcFacade) *feeAssignmentHandler {
	return &feeAssignmentHandler{ledgerService: ls, paymentService: ps}
}

// registerFeeAssignmentRoutes registers routes for the assignment ledger.
func registerFeeAssignmentRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newFeeAssignmentHandler(ledgerService, paymentService)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("", h.assignFee)
		assignments.GET("/:id", h.getAssignmentByID)
		assignments.GET("/:id/balance", h.getBalance)
		assignments.GET("/:id/payments", h.listPayments)
		assignments.POST("/sweep-overdue", h.sweepOverdue)
	}
}

// assignFee godoc
// @Summary Assign a fee structure to a student
// @Description Creates a PENDING assignment snapshotting the structure's amount and due date
// @Tags assignments
// @Accept  json
// @Produce  json
// @Param   assignment body dto.AssignFeeRequest true "Assignment details"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 404 {object} map[string]string "Structure or student not found"
// @Failure 409 {object} map[string]string "Already assigned"
// @Security BearerAuth
// @Router /assignments [post]
func (h *feeAssignmentHandler) assignFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignFee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	assignment, err := h.ledgerService.AssignFee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Fee structure or student not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Fee structure already assigned to this student"})
		case errors.Is(err, apperrors.ErrTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		default:
			logger.Error("Failed to assign fee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign fee"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// getAssignmentByID godoc
// @Summary Get an assignment by ID
// @Tags assignments
// @Produce  json
// @Param   id path string true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} map[string]string "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [get]
func (h *feeAssignmentHandler) getAssignmentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID := c.Param("id")

	assignment, err := h.ledgerService.GetAssignmentByID(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		} else {
			logger.Error("Failed to get assignment", slog.String("error", err.Error()), slog.String("assignment_id", assignmentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assignment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// getBalance godoc
// @Summary Get the outstanding balance of an assignment
// @Tags assignments
// @Produce  json
// @Param   id path string true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id}/balance [get]
func (h *feeAssignmentHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID := c.Param("id")

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		} else {
			logger.Error("Failed to get balance", slog.String("error", err.Error()), slog.String("assignment_id", assignmentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignmentID": assignmentID, "balance": balance})
}

// listPayments godoc
// @Summary List payments against an assignment
// @Tags assignments
// @Produce  json
// @Param   id path string true "Assignment ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /assignments/{id}/payments [get]
func (h *feeAssignmentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assignmentID := c.Param("id")

	payments, err := h.paymentService.ListPaymentsByAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
			return
		}
		logger.Error("Failed to list payments", slog.String("error", err.Error()), slog.String("assignment_id", assignmentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// sweepOverdue godoc
// @Summary Mark unpaid, past-due assignments as overdue
// @Description Idempotent; also run nightly by the scheduler
// @Tags assignments
// @Produce  json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /assignments/sweep-overdue [post]
func (h *feeAssignmentHandler) sweepOverdue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transitioned, err := h.ledgerService.SweepOverdue(c.Request.Context(), time.Now(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
			return
		}
		logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run overdue sweep"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transitioned": transitioned})
}
