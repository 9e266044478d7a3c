package models

import "fmt"

// SectionStatus tracks the terminal state of a section within one run.
type SectionStatus string

const (
	SectionUnscheduled SectionStatus = "UNSCHEDULED"
	SectionScheduled   SectionStatus = "SCHEDULED"
	SectionUnplaced    SectionStatus = "UNPLACED"
)

// UnplacedReason explains why the scheduler gave up on a section.
type UnplacedReason string

const (
	ReasonNoClassroom UnplacedReason = "NO_CLASSROOM"
	ReasonNoTeacher   UnplacedReason = "NO_TEACHER"
	ReasonNoPeriod    UnplacedReason = "NO_PERIOD"
)

// Section is one scheduled instance of a course for a cohort of at most
// max class size students. Teacher, classroom and period stay empty until
// the scheduler commits a placement.
type Section struct {
	ID          string        `json:"id"`
	CourseCode  string        `json:"courseCode"`
	Year        int           `json:"year"`
	Enrolled    int           `json:"enrolled"`
	Semester    int           `json:"semester"`
	Period      int           `json:"period,omitempty"`
	ClassroomID string        `json:"classroomId,omitempty"`
	TeacherID   string        `json:"teacherId,omitempty"`
	Status      SectionStatus `json:"status"`
}

// UnplacedSection reports a section the scheduler could not place.
type UnplacedSection struct {
	CourseCode string         `json:"courseCode"`
	Year       int            `json:"year"`
	Reason     UnplacedReason `json:"reason"`
}

// Timetable aggregates every placed section of one run, plus the pools
// the run drew from. Built fresh per invocation and discarded after
// reporting.
type Timetable struct {
	Sections   []Section   `json:"sections"`
	Classrooms []Classroom `json:"classrooms"`
	Teachers   []Teacher   `json:"teachers"`
	PeriodsPer int         `json:"periodsPerDay"`
}

// SectionsByPeriod returns placed sections for one period and semester.
func (t Timetable) SectionsByPeriod(period, semester int) []Section {
	var out []Section
	for _, s := range t.Sections {
		if s.Status == SectionScheduled && s.Period == period && s.Semester == semester {
			out = append(out, s)
		}
	}
	return out
}

// TeacherLoad returns the placed section count per teacher for a semester.
func (t Timetable) TeacherLoad(semester int) map[string]int {
	load := make(map[string]int)
	for _, s := range t.Sections {
		if s.Status == SectionScheduled && s.Semester == semester {
			load[s.TeacherID]++
		}
	}
	return load
}

// Validate audits the timetable for double bookings. It returns one
// message per violation; an empty slice means the invariants hold.
func (t Timetable) Validate() []string {
	var violations []string
	for semester := 1; semester <= 2; semester++ {
		for period := 1; period <= t.PeriodsPer; period++ {
			roomUse := make(map[string][]string)
			teacherUse := make(map[string][]string)
			for _, s := range t.SectionsByPeriod(period, semester) {
				roomUse[s.ClassroomID] = append(roomUse[s.ClassroomID], s.CourseCode)
				teacherUse[s.TeacherID] = append(teacherUse[s.TeacherID], s.CourseCode)
			}
			for room, courses := range roomUse {
				if len(courses) > 1 {
					violations = append(violations, fmt.Sprintf(
						"classroom %s double-booked in period %d semester %d: %v", room, period, semester, courses))
				}
			}
			for teacher, courses := range teacherUse {
				if len(courses) > 1 {
					violations = append(violations, fmt.Sprintf(
						"teacher %s double-booked in period %d semester %d: %v", teacher, period, semester, courses))
				}
			}
		}
	}
	return violations
}

// Pagination carries list metadata in response envelopes.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
