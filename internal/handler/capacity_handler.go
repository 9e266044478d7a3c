package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/service"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
	"github.com/agathon991/class-schedule-creator/pkg/response"
)

// CapacityHandler serves feasibility checks against actual facilities.
type CapacityHandler struct {
	service *service.CapacityService
}

// NewCapacityHandler constructs handler.
func NewCapacityHandler(svc *service.CapacityService) *CapacityHandler {
	return &CapacityHandler{service: svc}
}

// Check godoc
// @Summary Check a scenario against the actual room inventory
// @Tags Capacity
// @Accept json
// @Produce json
// @Param request body dto.CapacityCheckRequest true "Enrollment scenario"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /capacity/check [post]
func (h *CapacityHandler) Check(c *gin.Context) {
	var req dto.CapacityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	result, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// MaxEnrollment godoc
// @Summary Find the largest uniform per-path enrollment that fits
// @Tags Capacity
// @Produce json
// @Param maxClassSize query int false "Section size limit" default(25)
// @Param periodsPerDay query int false "Periods per day" default(6)
// @Success 200 {object} response.Envelope
// @Router /capacity/max-enrollment [get]
func (h *CapacityHandler) MaxEnrollment(c *gin.Context) {
	maxClassSize, err := strconv.Atoi(c.DefaultQuery("maxClassSize", "25"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "maxClassSize must be an integer"))
		return
	}
	periodsPerDay, err := strconv.Atoi(c.DefaultQuery("periodsPerDay", "6"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "periodsPerDay must be an integer"))
		return
	}
	result, err := h.service.MaxEnrollment(c.Request.Context(), maxClassSize, periodsPerDay)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
