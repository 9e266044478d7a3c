package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
)

// CatalogService exposes read-only catalog views for the API surface.
type CatalogService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCatalogService wires the catalog reader.
func NewCatalogService(cat *catalog.Catalog, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalog: cat, logger: logger}
}

// ListCourses returns the filtered, paginated course listing.
func (s *CatalogService) ListCourses(query dto.CourseQuery) ([]models.Course, models.Pagination) {
	var filtered []models.Course
	for _, course := range s.catalog.Courses() {
		if query.Subject != "" && course.SubjectArea != query.Subject {
			continue
		}
		if query.Level != "" && course.Level != query.Level {
			continue
		}
		filtered = append(filtered, course)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return filtered[start:end], models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// GetCourse looks up one course by code.
func (s *CatalogService) GetCourse(code string) (models.Course, bool) {
	return s.catalog.Course(code)
}

// ListPaths returns every graduation path decorated with AP detail.
func (s *CatalogService) ListPaths() []dto.PathPlanResponse {
	var out []dto.PathPlanResponse
	for _, plan := range s.catalog.Paths() {
		resp := dto.PathPlanResponse{
			Path:        plan.Path,
			Label:       plan.Path.Label(),
			Description: plan.Description,
			YearPlans:   plan.YearPlans,
		}
		seen := make(map[string]struct{})
		for _, yp := range plan.YearPlans {
			for _, code := range yp.Courses() {
				if _, ok := seen[code]; ok {
					continue
				}
				seen[code] = struct{}{}
				if course, found := s.catalog.Course(code); found && course.IsAP() {
					resp.APCourses = append(resp.APCourses, code)
				}
			}
		}
		sort.Strings(resp.APCourses)
		resp.TotalUnique = len(seen)
		out = append(out, resp)
	}
	return out
}

// Facilities describes the actual room inventory at section capacity.
func (s *CatalogService) Facilities(maxClassSize int) dto.FacilitiesResponse {
	rooms := catalog.ActualClassrooms(maxClassSize)
	resp := dto.FacilitiesResponse{
		Rooms:  rooms,
		ByType: make(map[models.RoomType]int),
	}
	for _, room := range rooms {
		resp.ByType[room.RoomType]++
		resp.TotalRooms++
	}
	return resp
}
