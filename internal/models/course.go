package models

// Course is an immutable catalog entry describing one offering.
type Course struct {
	Code          string      `json:"code" db:"code"`
	Name          string      `json:"name" db:"name"`
	SubjectArea   SubjectArea `json:"subjectArea" db:"subject_area"`
	Level         CourseLevel `json:"level" db:"level"`
	Credits       int         `json:"credits" db:"credits"`
	Semesters     int         `json:"semesters" db:"semesters"`
	RoomType      RoomType    `json:"roomType" db:"room_type"`
	Prerequisites []string    `json:"prerequisites,omitempty"`
	GradeLevels   []int       `json:"gradeLevels,omitempty"`
	Description   string      `json:"description,omitempty" db:"description"`
}

// IsAP reports whether the course is an Advanced Placement offering.
func (c Course) IsAP() bool {
	return c.Level == LevelAP
}

// NeedsSpecialRoom reports whether the course requires a non-general room.
func (c Course) NeedsSpecialRoom() bool {
	return c.RoomType != RoomGeneral
}

// YearPlan lists the course codes a path student takes in one school year.
// Year-long courses appear in both semester lists.
type YearPlan struct {
	Year      int      `json:"year"`
	Semester1 []string `json:"semester1"`
	Semester2 []string `json:"semester2"`
}

// Courses returns the deduplicated union of both semester lists.
func (y YearPlan) Courses() []string {
	seen := make(map[string]struct{}, len(y.Semester1)+len(y.Semester2))
	out := make([]string, 0, len(y.Semester1)+len(y.Semester2))
	for _, code := range append(append([]string{}, y.Semester1...), y.Semester2...) {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// PathPlan is the complete 4-year course sequence for one graduation path.
type PathPlan struct {
	Path        GraduationPath `json:"path"`
	Description string         `json:"description"`
	YearPlans   []YearPlan     `json:"yearPlans"`
}

// Classroom is a physical room, exclusively occupied by at most one
// section per period.
type Classroom struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	RoomType RoomType `json:"roomType"`
	Capacity int      `json:"capacity"`
}

// CanHost reports whether the room satisfies the course's room requirement.
// Courses with no special requirement accept any general room.
func (r Classroom) CanHost(c Course) bool {
	if c.RoomType == RoomGeneral {
		return r.RoomType == RoomGeneral
	}
	return r.RoomType == c.RoomType
}

// Teacher is a staff member qualified for exactly one subject area.
type Teacher struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	SubjectArea SubjectArea `json:"subjectArea"`
	APQualified bool        `json:"apQualified"`
	MaxPeriods  int         `json:"maxPeriodsPerDay"`
}

// CanTeach reports whether the teacher is qualified for the course:
// subject match always, AP flag when the course is AP.
func (t Teacher) CanTeach(c Course) bool {
	if t.SubjectArea != c.SubjectArea {
		return false
	}
	if c.IsAP() && !t.APQualified {
		return false
	}
	return true
}
