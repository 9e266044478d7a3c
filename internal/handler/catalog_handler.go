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

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListCourses godoc
// @Summary List catalog courses
// @Tags Catalog
// @Produce json
// @Param subject query string false "Filter by subject area"
// @Param level query string false "Filter by level (REGULAR, HONORS, AP)"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /catalog/courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	var query dto.CourseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course query"))
		return
	}
	courses, pagination := h.service.ListCourses(query)
	response.JSON(c, http.StatusOK, courses, &pagination)
}

// GetCourse godoc
// @Summary Get one course by code
// @Tags Catalog
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/courses/{code} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, ok := h.service.GetCourse(c.Param("code"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "course not found"))
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// ListPaths godoc
// @Summary List graduation paths
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/paths [get]
func (h *CatalogHandler) ListPaths(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ListPaths(), nil)
}

// Facilities godoc
// @Summary Describe the actual room inventory
// @Tags Catalog
// @Produce json
// @Param maxClassSize query int false "Room capacity" default(25)
// @Success 200 {object} response.Envelope
// @Router /catalog/facilities [get]
func (h *CatalogHandler) Facilities(c *gin.Context) {
	maxClassSize, err := strconv.Atoi(c.DefaultQuery("maxClassSize", "25"))
	if err != nil || maxClassSize < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "maxClassSize must be a positive integer"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.Facilities(maxClassSize), nil)
}
