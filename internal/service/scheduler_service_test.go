package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

func newScheduler(t *testing.T, cat *catalog.Catalog) *SchedulerService {
	t.Helper()
	calc := NewResourceCalculatorService(cat, nil, nil, nil)
	return NewSchedulerService(cat, calc, NewRunStore(time.Minute), nil, nil, nil)
}

func buildRun(t *testing.T, s *SchedulerService, req dto.BuildScheduleRequest) *dto.BuildScheduleResponse {
	t.Helper()
	run, err := s.BuildSchedule(context.Background(), req)
	require.NoError(t, err)
	return run
}

func TestBuildScheduleProducesConflictFreeTimetable(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	s := newScheduler(t, cat)

	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment: map[models.GraduationPath]int{
				models.PathMinimum:     30,
				models.PathPreMed:      30,
				models.PathEngineering: 30,
			},
			MaxClassSize:  25,
			PeriodsPerDay: 8,
		},
	})

	require.Empty(t, run.Violations)
	require.NotEmpty(t, run.Timetable.Sections)
	for _, section := range run.Timetable.Sections {
		require.Equal(t, models.SectionScheduled, section.Status)
		require.GreaterOrEqual(t, section.Period, 1)
		require.LessOrEqual(t, section.Period, 8)
		require.NotEmpty(t, section.ClassroomID)
		require.NotEmpty(t, section.TeacherID)
	}
}

func TestBuildScheduleIsDeterministic(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	s := newScheduler(t, cat)

	req := dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 40, models.PathPreMed: 40},
			MaxClassSize:  25,
			PeriodsPerDay: 7,
		},
	}
	first := buildRun(t, s, req)
	second := buildRun(t, s, req)

	require.NotEqual(t, first.RunID, second.RunID)
	require.Equal(t, first.Timetable.Sections, second.Timetable.Sections)
	require.Equal(t, first.Unplaced, second.Unplaced)
}

func TestBuildScheduleEveryTeacherKeepsAPlanningPeriod(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	s := newScheduler(t, cat)

	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 50, models.PathEngineering: 50},
			MaxClassSize:  25,
			PeriodsPerDay: 7,
		},
	})

	for semester := 1; semester <= 2; semester++ {
		for teacherID, load := range run.Timetable.TeacherLoad(semester) {
			require.Less(t, load, run.Timetable.PeriodsPer,
				"teacher %s has no free period in semester %d", teacherID, semester)
		}
	}
}

// Two-subject catalog used by the reason-code and semester tests.
func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	courses := []models.Course{
		{Code: "CHEM", Name: "Chemistry", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomChemLab},
		{Code: "HIST", Name: "History", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
		{Code: "MATH", Name: "Mathematics", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
		{Code: "MATH-AP", Name: "AP Mathematics", SubjectArea: models.SubjectMath, Level: models.LevelAP, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{{
		Path: models.PathMinimum,
		YearPlans: []models.YearPlan{
			{Year: 1, Semester1: []string{"HIST", "MATH"}, Semester2: []string{"HIST", "MATH"}},
		},
	}}
	cat, err := catalog.New(courses, paths)
	require.NoError(t, err)
	return cat
}

func TestUnplacedReasonNoClassroom(t *testing.T) {
	courses := []models.Course{
		{Code: "CHEM", Name: "Chemistry", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomChemLab},
	}
	paths := []models.PathPlan{{
		Path:      models.PathMinimum,
		YearPlans: []models.YearPlan{{Year: 1, Semester1: []string{"CHEM"}, Semester2: []string{"CHEM"}}},
	}}
	cat, err := catalog.New(courses, paths)
	require.NoError(t, err)
	s := newScheduler(t, cat)

	// Only a general room on offer, so the lab course cannot land anywhere.
	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
		Classrooms: []models.Classroom{{ID: "G1", Name: "Room 101", RoomType: models.RoomGeneral, Capacity: 25}},
		Teachers:   []models.Teacher{{ID: "SCI1", Name: "Science Teacher", SubjectArea: models.SubjectLabScience}},
	})

	require.Len(t, run.Unplaced, 1)
	require.Equal(t, models.ReasonNoClassroom, run.Unplaced[0].Reason)
	require.Equal(t, "CHEM", run.Unplaced[0].CourseCode)
}

func TestUnplacedReasonNoTeacherForAPCourse(t *testing.T) {
	courses := []models.Course{
		{Code: "MATH-AP", Name: "AP Mathematics", SubjectArea: models.SubjectMath, Level: models.LevelAP, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{{
		Path:      models.PathMinimum,
		YearPlans: []models.YearPlan{{Year: 1, Semester1: []string{"MATH-AP"}, Semester2: []string{"MATH-AP"}}},
	}}
	cat, err := catalog.New(courses, paths)
	require.NoError(t, err)
	s := newScheduler(t, cat)

	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
		Classrooms: []models.Classroom{{ID: "G1", Name: "Room 101", RoomType: models.RoomGeneral, Capacity: 25}},
		Teachers:   []models.Teacher{{ID: "M1", Name: "Math Teacher", SubjectArea: models.SubjectMath, APQualified: false}},
	})

	require.Len(t, run.Unplaced, 1)
	require.Equal(t, models.ReasonNoTeacher, run.Unplaced[0].Reason)
}

func TestUnplacedReasonNoPeriod(t *testing.T) {
	s := newScheduler(t, smallCatalog(t))

	// Two rooms and two periods. History fills period 1 in both rooms,
	// the single math teacher lands in period 2, and the second math
	// section sees rooms and teacher free only in disjoint periods.
	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30},
			MaxClassSize:  15,
			PeriodsPerDay: 2,
		},
		Classrooms: []models.Classroom{
			{ID: "G1", Name: "Room 101", RoomType: models.RoomGeneral, Capacity: 15},
			{ID: "G2", Name: "Room 102", RoomType: models.RoomGeneral, Capacity: 15},
		},
		Teachers: []models.Teacher{
			{ID: "H1", Name: "History One", SubjectArea: models.SubjectHistory, MaxPeriods: 1},
			{ID: "H2", Name: "History Two", SubjectArea: models.SubjectHistory, MaxPeriods: 1},
			{ID: "M1", Name: "Math One", SubjectArea: models.SubjectMath, MaxPeriods: 2},
		},
	})

	require.Len(t, run.Unplaced, 1)
	require.Equal(t, "MATH", run.Unplaced[0].CourseCode)
	require.Equal(t, models.ReasonNoPeriod, run.Unplaced[0].Reason)
}

func TestPlanningPeriodAuditPullsBackOverloadedTeacher(t *testing.T) {
	courses := []models.Course{
		{Code: "MATH", Name: "Mathematics", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{{
		Path:      models.PathMinimum,
		YearPlans: []models.YearPlan{{Year: 1, Semester1: []string{"MATH"}, Semester2: []string{"MATH"}}},
	}}
	cat, err := catalog.New(courses, paths)
	require.NoError(t, err)
	s := newScheduler(t, cat)

	// The caller-supplied teacher claims both periods of a two-period
	// day. The audit must reclaim one so a planning period survives.
	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30},
			MaxClassSize:  15,
			PeriodsPerDay: 2,
		},
		Classrooms: []models.Classroom{
			{ID: "G1", Name: "Room 101", RoomType: models.RoomGeneral, Capacity: 15},
			{ID: "G2", Name: "Room 102", RoomType: models.RoomGeneral, Capacity: 15},
		},
		Teachers: []models.Teacher{
			{ID: "M1", Name: "Math One", SubjectArea: models.SubjectMath, MaxPeriods: 2},
		},
	})

	require.Len(t, run.Unplaced, 1)
	for semester := 1; semester <= 2; semester++ {
		for teacherID, load := range run.Timetable.TeacherLoad(semester) {
			require.Less(t, load, 2, "teacher %s lost the planning period in semester %d", teacherID, semester)
		}
	}
}

func TestSingleSemesterCoursesShareSlotsAcrossSemesters(t *testing.T) {
	courses := []models.Course{
		{Code: "ECON", Name: "Economics", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Semesters: 1, RoomType: models.RoomGeneral},
		{Code: "GOVT", Name: "Government", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Semesters: 1, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{{
		Path:      models.PathMinimum,
		YearPlans: []models.YearPlan{{Year: 1, Semester1: []string{"GOVT"}, Semester2: []string{"ECON"}}},
	}}
	cat, err := catalog.New(courses, paths)
	require.NoError(t, err)
	s := newScheduler(t, cat)

	// One room, one teacher, two periods. Government and economics run
	// in different semesters, so both fit without conflicts.
	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 2,
		},
		Classrooms: []models.Classroom{{ID: "G1", Name: "Room 101", RoomType: models.RoomGeneral, Capacity: 25}},
		Teachers:   []models.Teacher{{ID: "H1", Name: "History One", SubjectArea: models.SubjectHistory}},
	})

	require.Empty(t, run.Unplaced)
	require.Empty(t, run.Violations)
	require.Len(t, run.Timetable.Sections, 2)
	semesters := map[int]bool{}
	for _, section := range run.Timetable.Sections {
		semesters[section.Semester] = true
	}
	require.True(t, semesters[1])
	require.True(t, semesters[2])
}

func TestYearLongCoursesOccupyBothSemesters(t *testing.T) {
	s := newScheduler(t, smallCatalog(t))

	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})

	bySlot := make(map[string][]models.Section)
	for _, section := range run.Timetable.Sections {
		key := section.CourseCode
		bySlot[key] = append(bySlot[key], section)
	}
	for code, sections := range bySlot {
		require.Len(t, sections, 2, "year-long course %s should appear in both semesters", code)
		require.Equal(t, sections[0].Period, sections[1].Period)
		require.Equal(t, sections[0].ClassroomID, sections[1].ClassroomID)
		require.Equal(t, sections[0].TeacherID, sections[1].TeacherID)
	}
}

func TestGetRunReturnsStoredRunAndRejectsUnknownID(t *testing.T) {
	s := newScheduler(t, smallCatalog(t))
	run := buildRun(t, s, dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})

	fetched, err := s.GetRun(run.RunID)
	require.NoError(t, err)
	require.Equal(t, run.RunID, fetched.RunID)

	_, err = s.GetRun("no-such-run")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRunStoreExpiresEntries(t *testing.T) {
	store := NewRunStore(10 * time.Millisecond)
	store.Save("run-1", &dto.BuildScheduleResponse{RunID: "run-1"})

	_, ok := store.Get("run-1")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = store.Get("run-1")
	require.False(t, ok)
}
