package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/schoolworks/fees_ledger_app/internal/middleware"
)

// studentHandler handles HTTP requests for the student registry.
type studentHandler struct {
	studentService portssvc.StudentSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

func newStudentHandler(ss portssvc.StudentSvcFacade, ls portssvc.LedgerSvcFacade) *studentHandler {
	return &studentHandler{studentService: ss, ledgerService: ls}
}

// registerStudentRoutes registers routes for the student registry.
func registerStudentRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newStudentHandler(studentService, ledgerService)

	students := rg.Group("/students")
	{
		students.POST("", h.createStudent)
		students.GET("", h.listStudents)
		students.GET("/:id", h.getStudentByID)
		students.GET("/:id/assignments", h.listAssignments)
	}
}

// createStudent godoc
// @Summary Register a student
// @Tags students
// @Accept  json
// @Produce  json
// @Param   student body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.StudentResponse
// @Failure 409 {object} map[string]string "Admission number already exists"
// @Security BearerAuth
// @Router /students [post]
func (h *studentHandler) createStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStudent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Admission number already registered"})
		} else if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		} else {
			logger.Error("Failed to create student", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register student"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// getStudentByID godoc
// @Summary Get a student by ID
// @Tags students
// @Produce  json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *studentHandler) getStudentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("id")

	student, err := h.studentService.GetStudentByID(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		} else {
			logger.Error("Failed to get student", slog.String("error", err.Error()), slog.String("student_id", studentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve student"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// listStudents godoc
// @Summary List students
// @Tags students
// @Produce  json
// @Param   class query string false "Class"
// @Param   section query string false "Section"
// @Success 200 {array} dto.StudentResponse
// @Security BearerAuth
// @Router /students [get]
func (h *studentHandler) listStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	students, err := h.studentService.ListStudents(c.Request.Context(), c.Query("class"), c.Query("section"))
	if err != nil {
		logger.Error("Failed to list students", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// listAssignments godoc
// @Summary List a student's fee assignments
// @Tags students
// @Produce  json
// @Param   id path string true "Student ID"
// @Success 200 {array} dto.AssignmentResponse
// @Security BearerAuth
// @Router /students/{id}/assignments [get]
func (h *studentHandler) listAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("id")

	assignments, err := h.ledgerService.ListAssignmentsByStudent(c.Request.Context(), studentID)
	if err != nil {
		logger.Error("Failed to list student assignments", slog.String("error", err.Error()), slog.String("student_id", studentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponses(assignments))
}
