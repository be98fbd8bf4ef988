package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler serves the read-only finance aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the finance reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/finance/overview", h.financeOverview)
		reports.GET("/finance/export", h.exportYearReport)
	}
}

func (h *reportingHandler) financeOverview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.FinanceOverviewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	overview, err := h.reportingService.Overview(c.Request.Context(), actor, params.Year, params.Month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *reportingHandler) exportYearReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four digit year"})
		return
	}

	report, err := h.reportingService.YearReportXLSX(c.Request.Context(), actor, year)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("finance-report-%d.xlsx", year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, report)
}
