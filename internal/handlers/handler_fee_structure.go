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

// feeStructureHandler handles HTTP requests for the fee-structure catalog.
type feeStructureHandler struct {
	structureService portssvc.FeeStructureSvcFacade
}

func newFeeStructureHandler(ss portssvc.FeeStructureSvcFacade) *feeStructureHandler {
	return &feeStructureHandler{structureService: ss}
}

// registerFeeStructureRoutes registers routes for the fee-structure catalog.
func registerFeeStructureRoutes(rg *gin.RouterGroup, structureService portssvc.FeeStructureSvcFacade) {
	h := newFeeStructureHandler(structureService)

	structures := rg.Group("/fee-structures")
	{
		structures.POST("", h.createStructure)
		structures.GET("", h.listStructures)
		structures.GET("/:id", h.getStructureByID)
		structures.PUT("/:id", h.updateStructure)
		structures.DELETE("/:id", h.deleteStructure)
	}
}

// createStructure godoc
// @Summary Create a new fee structure
// @Description Defines a billable item for a class/section and academic year
// @Tags fee-structures
// @Accept  json
// @Produce  json
// @Param   structure body dto.CreateFeeStructureRequest true "Fee structure details"
// @Success 201 {object} dto.FeeStructureResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /fee-structures [post]
func (h *feeStructureHandler) createStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStructure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	structure, err := h.structureService.CreateStructure(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating fee structure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		} else {
			logger.Error("Failed to create fee structure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fee structure"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeeStructureResponse(structure))
}

// getStructureByID godoc
// @Summary Get a fee structure by ID
// @Tags fee-structures
// @Produce  json
// @Param   id path string true "Structure ID"
// @Success 200 {object} dto.FeeStructureResponse
// @Failure 404 {object} map[string]string "Structure not found"
// @Security BearerAuth
// @Router /fee-structures/{id} [get]
func (h *feeStructureHandler) getStructureByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	structureID := c.Param("id")

	structure, err := h.structureService.GetStructureByID(c.Request.Context(), structureID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fee structure not found"})
		} else if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		} else {
			logger.Error("Failed to get fee structure", slog.String("error", err.Error()), slog.String("structure_id", structureID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fee structure"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeStructureResponse(structure))
}

// updateStructure godoc
// @Summary Update a fee structure
// @Description Edits amount, due date and/or description. Already-issued assignments keep their snapshot.
// @Tags fee-structures
// @Accept  json
// @Produce  json
// @Param   id path string true "Structure ID"
// @Param   structure body dto.UpdateFeeStructureRequest true "Fields to update"
// @Success 200 {object} dto.FeeStructureResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Structure not found"
// @Security BearerAuth
// @Router /fee-structures/{id} [put]
func (h *feeStructureHandler) updateStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	structureID := c.Param("id")

	var req dto.UpdateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStructure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	structure, err := h.structureService.UpdateStructure(c.Request.Context(), structureID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Fee structure not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		default:
			logger.Error("Failed to update fee structure", slog.String("error", err.Error()), slog.String("structure_id", structureID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fee structure"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeStructureResponse(structure))
}

// deleteStructure godoc
// @Summary Delete a fee structure
// @Description Hard-deletes a structure that has no assignments
// @Tags fee-structures
// @Param   id path string true "Structure ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Structure not found"
// @Failure 409 {object} map[string]string "Structure has assignments"
// @Security BearerAuth
// @Router /fee-structures/{id} [delete]
func (h *feeStructureHandler) deleteStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	structureID := c.Param("id")

	err := h.structureService.DeleteStructure(c.Request.Context(), structureID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Fee structure not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Fee structure has assignments and cannot be deleted"})
		case errors.Is(err, apperrors.ErrTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
		default:
			logger.Error("Failed to delete fee structure", slog.String("error", err.Error()), slog.String("structure_id", structureID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fee structure"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listStructures godoc
// @Summary List fee structures
// @Description Retrieves structures filtered by class, section, academic year and/or fee type
// @Tags fee-structures
// @Produce  json
// @Param   class query string false "Class"
// @Param   section query string false "Section"
// @Param   academicYear query string false "Academic year"
// @Param   feeType query string false "Fee type"
// @Success 200 {array} dto.FeeStructureResponse
// @Security BearerAuth
// @Router /fee-structures [get]
func (h *feeStructureHandler) listStructures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListStructuresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	structures, err := h.structureService.ListStructures(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
			return
		}
		logger.Error("Failed to list fee structures", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fee structures"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeStructureResponses(structures))
}
