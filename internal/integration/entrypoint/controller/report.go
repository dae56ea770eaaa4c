package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/report"
	"github.com/finbook/backend/internal/domain/valueobject"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// ReportController handles the monthly report endpoints.
type ReportController struct {
	summaryUseCase *report.GetSummaryUseCase
	exportUseCase  *report.ExportCSVUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	exportUseCase *report.ExportCSVUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase: summaryUseCase,
		exportUseCase:  exportUseCase,
	}
}

// Summary handles GET /reports/summary?year=&month= requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// ExportCSV handles GET /reports/export.csv?year=&month= requests.
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportCSVInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	filename := fmt.Sprintf("report-%s.csv", period)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.CSV))
}

// parsePeriodQuery reads the required year and month query parameters,
// writing the 400 response itself on malformed input.
func parsePeriodQuery(ctx *gin.Context) (valueobject.Period, bool) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		respondBadRequest(ctx, "Invalid or missing year")
		return valueobject.Period{}, false
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		respondBadRequest(ctx, "Invalid or missing month")
		return valueobject.Period{}, false
	}
	return valueobject.NewPeriod(year, month), true
}
