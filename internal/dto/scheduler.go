package dto

import "github.com/agathon991/class-schedule-creator/internal/models"

// EnrollmentScenario is the common calculator/scheduler input: students
// per graduation path plus the section-size policy and day shape.
type EnrollmentScenario struct {
	Enrollment    map[models.GraduationPath]int `json:"enrollment" validate:"required,min=1,dive,min=0"`
	MaxClassSize  int                           `json:"maxClassSize" validate:"required,min=1"`
	PeriodsPerDay int                           `json:"periodsPerDay" validate:"required,min=1,max=16"`
}

// TotalStudents sums the scenario's enrollment across paths.
func (s EnrollmentScenario) TotalStudents() int {
	total := 0
	for _, n := range s.Enrollment {
		total += n
	}
	return total
}

// ResourcePlanRequest asks the calculator for a minimum inventory.
type ResourcePlanRequest struct {
	EnrollmentScenario
}

// BuildScheduleRequest asks the scheduler for a full timetable run.
// When pools are omitted they are synthesized from the computed
// resource plan; UseActualFacilities substitutes the school's real
// room inventory instead.
type BuildScheduleRequest struct {
	EnrollmentScenario
	Classrooms          []models.Classroom `json:"classrooms,omitempty" validate:"omitempty,dive"`
	Teachers            []models.Teacher   `json:"teachers,omitempty" validate:"omitempty,dive"`
	UseActualFacilities bool               `json:"useActualFacilities"`
}

// BuildScheduleResponse carries one completed run.
type BuildScheduleResponse struct {
	RunID      string                   `json:"runId"`
	Plan       models.ResourcePlan      `json:"plan"`
	Timetable  models.Timetable         `json:"timetable"`
	Unplaced   []models.UnplacedSection `json:"unplaced"`
	Violations []string                 `json:"violations,omitempty"`
}

// Feasible reports whether every section found a slot.
func (r BuildScheduleResponse) Feasible() bool {
	return len(r.Unplaced) == 0
}
