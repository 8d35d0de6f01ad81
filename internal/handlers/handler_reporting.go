package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/dto"
	"github.com/schoolworks/fees_ledger_app/internal/middleware"
	"github.com/schoolworks/fees_ledger_app/internal/platform/metrics"
	"github.com/schoolworks/fees_ledger_app/internal/utils/export"
)

// reportingHandler handles HTTP requests for collection reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes for reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getCollectionSummary)
		reports.GET("/by-fee-type", h.getCollectionByFeeType)
		reports.GET("/monthly/:year/:month", h.getMonthlyCollection)
		reports.GET("/monthly/:year/:month/export", h.exportMonthlyCollection)
	}
}

func bindCollectionFilter(c *gin.Context) (portsrepo.CollectionFilter, error) {
	var params dto.CollectionFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return portsrepo.CollectionFilter{}, err
	}
	return portsrepo.CollectionFilter{
		From:    params.From,
		To:      params.To,
		FeeType: params.FeeType,
	}, nil
}

// getCollectionSummary godoc
// @Summary Collection dashboard summary
// @Description Total collected, total pending and overdue count, optionally filtered
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Param   feeType query string false "Fee type"
// @Success 200 {object} dto.CollectionSummaryResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getCollectionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := bindCollectionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.CollectionSummary(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
			return
		}
		logger.Error("Failed to build collection summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build collection summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionSummaryResponse(summary))
}

// getCollectionByFeeType godoc
// @Summary Collected totals per fee type
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.FeeTypeCollectionResponse
// @Security BearerAuth
// @Router /reports/by-fee-type [get]
func (h *reportingHandler) getCollectionByFeeType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := bindCollectionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.CollectionByFeeType(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
			return
		}
		logger.Error("Failed to build fee type breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build fee type breakdown"})
		return
	}

	responses := make([]dto.FeeTypeCollectionResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.FeeTypeCollectionResponse{
			FeeType:   string(row.FeeType),
			Collected: row.Collected,
			Payments:  row.Payments,
		}
	}
	c.JSON(http.StatusOK, responses)
}

func parseYearMonth(c *gin.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, errors.New("year must be a four digit number")
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return 0, 0, errors.New("month must be between 1 and 12")
	}
	return year, time.Month(monthNum), nil
}

// getMonthlyCollection godoc
// @Summary Monthly collection register
// @Tags reports
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyCollectionResponse
// @Security BearerAuth
// @Router /reports/monthly/{year}/{month} [get]
func (h *reportingHandler) getMonthlyCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.PaymentsByMonth(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Store timed out, please retry"})
			return
		}
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyCollectionResponse(report))
}

// exportMonthlyCollection godoc
// @Summary Download the monthly collection register as XLSX
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/monthly/{year}/{month}/export [get]
func (h *reportingHandler) exportMonthlyCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.PaymentsByMonth(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to build monthly report for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly report"})
		return
	}

	data, err := export.BuildMonthlyCollectionXLSX(report)
	metrics.IncReportExport("xlsx", err)
	if err != nil {
		logger.Error("Failed to render collection workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render export"})
		return
	}

	filename := fmt.Sprintf("collections-%s.xlsx", report.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
