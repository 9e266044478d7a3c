package dto

import "github.com/agathon991/class-schedule-creator/internal/models"

// CourseQuery filters the course listing.
type CourseQuery struct {
	Subject  models.SubjectArea `form:"subject"`
	Level    models.CourseLevel `form:"level"`
	Page     int                `form:"page"`
	PageSize int                `form:"pageSize"`
}

// PathPlanResponse decorates a path plan with per-year course detail.
type PathPlanResponse struct {
	Path        models.GraduationPath `json:"path"`
	Label       string                `json:"label"`
	Description string                `json:"description"`
	YearPlans   []models.YearPlan     `json:"yearPlans"`
	APCourses   []string              `json:"apCourses"`
	TotalUnique int                   `json:"totalUniqueCourses"`
}

// FacilitiesResponse describes the actual room inventory.
type FacilitiesResponse struct {
	Rooms      []models.Classroom      `json:"rooms"`
	ByType     map[models.RoomType]int `json:"byType"`
	TotalRooms int                     `json:"totalRooms"`
}
