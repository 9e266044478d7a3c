package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	"github.com/agathon991/class-schedule-creator/internal/service"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
	"github.com/agathon991/class-schedule-creator/pkg/response"
)

// PlanHandler serves resource-plan computation and export.
type PlanHandler struct {
	calc    *service.ResourceCalculatorService
	reports *service.ReportService
}

// NewPlanHandler constructs handler.
func NewPlanHandler(calc *service.ResourceCalculatorService, reports *service.ReportService) *PlanHandler {
	return &PlanHandler{calc: calc, reports: reports}
}

// Compute godoc
// @Summary Compute the minimum resource plan for a scenario
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body dto.ResourcePlanRequest true "Enrollment scenario"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /resource-plan [post]
func (h *PlanHandler) Compute(c *gin.Context) {
	var req dto.ResourcePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	plan, err := h.calc.ComputeResources(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}

// scenarioFromQuery reads an enrollment scenario from query parameters.
// Each graduation path is its own parameter, e.g. ?MINIMUM=120&PRE_MED=40.
func scenarioFromQuery(c *gin.Context) (dto.EnrollmentScenario, error) {
	scenario := dto.EnrollmentScenario{Enrollment: make(map[models.GraduationPath]int)}
	for _, path := range models.AllGraduationPaths {
		raw := c.Query(string(path))
		if raw == "" {
			continue
		}
		count, err := strconv.Atoi(raw)
		if err != nil {
			return scenario, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s must be an integer", path))
		}
		scenario.Enrollment[path] = count
	}

	var err error
	scenario.MaxClassSize, err = strconv.Atoi(c.DefaultQuery("maxClassSize", "25"))
	if err != nil {
		return scenario, appErrors.Clone(appErrors.ErrValidation, "maxClassSize must be an integer")
	}
	scenario.PeriodsPerDay, err = strconv.Atoi(c.DefaultQuery("periodsPerDay", "6"))
	if err != nil {
		return scenario, appErrors.Clone(appErrors.ErrValidation, "periodsPerDay must be an integer")
	}
	return scenario, nil
}

// Export godoc
// @Summary Export the resource plan as CSV or PDF
// @Tags Planning
// @Produce octet-stream
// @Param MINIMUM query int false "Enrollment on the minimum path"
// @Param PRE_MED query int false "Enrollment on the pre-med path"
// @Param ENGINEERING query int false "Enrollment on the engineering path"
// @Param maxClassSize query int false "Section size limit" default(25)
// @Param periodsPerDay query int false "Periods per day" default(6)
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /resource-plan/export [get]
func (h *PlanHandler) Export(c *gin.Context) {
	scenario, err := scenarioFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	plan, err := h.calc.ComputeResources(c.Request.Context(), dto.ResourcePlanRequest{EnrollmentScenario: scenario})
	if err != nil {
		response.Error(c, err)
		return
	}

	data := h.reports.PlanDataset(*plan)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		out, err := h.reports.RenderCSV(data)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resource-plan.csv"`)
		c.Data(http.StatusOK, "text/csv", out)
	case "pdf":
		out, err := h.reports.RenderPDF(data, "Resource Plan")
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resource-plan.pdf"`)
		c.Data(http.StatusOK, "application/pdf", out)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", c.Query("format"))))
	}
}
