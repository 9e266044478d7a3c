package dto

import "github.com/agathon991/class-schedule-creator/internal/models"

// CapacityCheckRequest asks whether a scenario fits the school's actual
// room inventory.
type CapacityCheckRequest struct {
	EnrollmentScenario
}

// RoomPressure reports demand against supply for one room type.
// Available counts room-periods: rooms of the type times periods per day.
type RoomPressure struct {
	RoomType       models.RoomType `json:"roomType"`
	SectionsNeeded int             `json:"sectionsNeeded"`
	Available      int             `json:"available"`
	Feasible       bool            `json:"feasible"`
}

// CapacityCheckResponse summarises the feasibility audit.
type CapacityCheckResponse struct {
	Feasible   bool            `json:"feasible"`
	Bottleneck models.RoomType `json:"bottleneck,omitempty"`
	Rooms      []RoomPressure  `json:"rooms"`
	Teachers   TeacherSummary  `json:"teachers"`
}

// TeacherSummary aggregates the teacher side of a capacity answer.
type TeacherSummary struct {
	Total       int `json:"total"`
	APQualified int `json:"apQualified"`
}

// MaxEnrollmentResponse reports the largest uniform per-path enrollment
// the actual facilities can carry.
type MaxEnrollmentResponse struct {
	MaxPerPath    int `json:"maxPerPath"`
	TotalStudents int `json:"totalStudents"`
	MaxClassSize  int `json:"maxClassSize"`
	PeriodsPerDay int `json:"periodsPerDay"`
}
