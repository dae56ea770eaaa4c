package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/salary"
	"github.com/finbook/backend/internal/domain/valueobject"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// SalaryController handles salary endpoints.
type SalaryController struct {
	listUseCase   *salary.ListSalariesUseCase
	getUseCase    *salary.GetSalaryUseCase
	upsertUseCase *salary.UpsertSalaryUseCase
}

// NewSalaryController creates a new salary controller instance.
func NewSalaryController(
	listUseCase *salary.ListSalariesUseCase,
	getUseCase *salary.GetSalaryUseCase,
	upsertUseCase *salary.UpsertSalaryUseCase,
) *SalaryController {
	return &SalaryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// List handles GET /salaries requests. Optional year and month query
// parameters narrow the listing.
func (c *SalaryController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	input := salary.ListSalariesInput{UserID: userID}

	var err error
	if input.Year, err = parseIntQuery(ctx, "year"); err != nil {
		respondBadRequest(ctx, "Invalid year")
		return
	}
	if input.Month, err = parseIntQuery(ctx, "month"); err != nil {
		respondBadRequest(ctx, "Invalid month")
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalaryListResponse(output.Salaries))
}

// Get handles GET /salaries/:year/:month requests.
func (c *SalaryController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	period, ok := parsePeriodParams(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), salary.GetSalaryInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalaryResponse(output.Salary))
}

// Upsert handles PUT /salaries requests. Repeating the call for the same
// month replaces the amount instead of creating a second entry.
func (c *SalaryController) Upsert(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertSalaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), salary.UpsertSalaryInput{
		UserID: userID,
		Period: valueobject.NewPeriod(req.Year, req.Month),
		Amount: req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalaryResponse(output.Salary))
}

// parseIntQuery reads an optional integer query parameter, returning zero
// when it is absent.
func parseIntQuery(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// parsePeriodParams reads the :year/:month path parameters, writing the 400
// response itself on malformed input.
func parsePeriodParams(ctx *gin.Context) (valueobject.Period, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		respondBadRequest(ctx, "Invalid year")
		return valueobject.Period{}, false
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || month < 1 || month > 12 {
		respondBadRequest(ctx, "Invalid month")
		return valueobject.Period{}, false
	}
	return valueobject.NewPeriod(year, month), true
}
