package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/service"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
	"github.com/agathon991/class-schedule-creator/pkg/export"
	"github.com/agathon991/class-schedule-creator/pkg/response"
)

// ScheduleHandler serves schedule runs and their exports.
type ScheduleHandler struct {
	scheduler *service.SchedulerService
	reports   *service.ReportService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(scheduler *service.SchedulerService, reports *service.ReportService) *ScheduleHandler {
	return &ScheduleHandler{scheduler: scheduler, reports: reports}
}

// Build godoc
// @Summary Build a complete timetable for a scenario
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param request body dto.BuildScheduleRequest true "Scenario plus optional pools"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Build(c *gin.Context) {
	var req dto.BuildScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	run, err := h.scheduler.BuildSchedule(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, run)
}

// Get godoc
// @Summary Fetch a retained schedule run
// @Tags Scheduling
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/{runId} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	run, err := h.scheduler.GetRun(c.Param("runId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, run, nil)
}

// Export godoc
// @Summary Export one semester of a run as CSV or PDF
// @Tags Scheduling
// @Produce octet-stream
// @Param runId path string true "Run ID"
// @Param semester query int false "Semester (1 or 2)" default(1)
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /schedule/{runId}/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	run, err := h.scheduler.GetRun(c.Param("runId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	semester, err := strconv.Atoi(c.DefaultQuery("semester", "1"))
	if err != nil || semester < 1 || semester > 2 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester must be 1 or 2"))
		return
	}

	data := h.reports.ScheduleDataset(*run, semester)
	title := fmt.Sprintf("Master Schedule, Semester %d", semester)
	h.render(c, data, title, fmt.Sprintf("schedule-sem%d", semester))
}

// ExportTeacherLoad godoc
// @Summary Export per-teacher section loads for one semester of a run
// @Tags Scheduling
// @Produce octet-stream
// @Param runId path string true "Run ID"
// @Param semester query int false "Semester (1 or 2)" default(1)
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /schedule/{runId}/teachers/export [get]
func (h *ScheduleHandler) ExportTeacherLoad(c *gin.Context) {
	run, err := h.scheduler.GetRun(c.Param("runId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	semester, err := strconv.Atoi(c.DefaultQuery("semester", "1"))
	if err != nil || semester < 1 || semester > 2 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester must be 1 or 2"))
		return
	}

	data := h.reports.TeacherLoadDataset(*run, semester)
	title := fmt.Sprintf("Teacher Load, Semester %d", semester)
	h.render(c, data, title, fmt.Sprintf("teacher-load-sem%d", semester))
}

func (h *ScheduleHandler) render(c *gin.Context, data export.Dataset, title, filename string) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		out, err := h.reports.RenderCSV(data)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
		c.Data(http.StatusOK, "text/csv", out)
	case "pdf":
		out, err := h.reports.RenderPDF(data, title)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
		c.Data(http.StatusOK, "application/pdf", out)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", c.Query("format"))))
	}
}
