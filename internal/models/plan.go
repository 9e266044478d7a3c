package models

// TeacherNeed is the computed teacher requirement for one subject area.
// APQualified is a subset of Total: at least that many of the subject's
// teachers must carry the AP flag, the rest may be regular-only.
type TeacherNeed struct {
	Total       int `json:"total"`
	APQualified int `json:"apQualified"`
}

// CourseSections is the computed section requirement for one course in
// one year of the program.
type CourseSections struct {
	CourseCode string `json:"courseCode"`
	Year       int    `json:"year"`
	Enrolled   int    `json:"enrolled"`
	Sections   int    `json:"sections"`
}

// ResourcePlan is the minimum classroom and teacher inventory derived
// from an enrollment scenario. Pure output of the calculator.
type ResourcePlan struct {
	Classrooms      map[RoomType]int            `json:"classrooms"`
	Teachers        map[SubjectArea]TeacherNeed `json:"teachers"`
	CourseSections  []CourseSections            `json:"courseSections"`
	TotalClassrooms int                         `json:"totalClassrooms"`
	TotalTeachers   int                         `json:"totalTeachers"`
}

// SectionsForCourse sums the plan's sections across years for a course.
func (p ResourcePlan) SectionsForCourse(code string) int {
	total := 0
	for _, cs := range p.CourseSections {
		if cs.CourseCode == code {
			total += cs.Sections
		}
	}
	return total
}
