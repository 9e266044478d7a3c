package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

func TestBuiltinCatalogIsConsistent(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, cat.Courses())
	require.Len(t, cat.Paths(), 3)
}

func TestBuiltinPathsOnlyReferenceDefinedCourses(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)
	for _, plan := range cat.Paths() {
		for _, yp := range plan.YearPlans {
			for _, code := range yp.Courses() {
				_, ok := cat.Course(code)
				require.True(t, ok, "path %s references undefined course %s", plan.Path, code)
			}
		}
	}
}

func TestCoursesAreSortedByCode(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)
	courses := cat.Courses()
	require.True(t, sort.SliceIsSorted(courses, func(i, j int) bool {
		return courses[i].Code < courses[j].Code
	}))
}

func TestNewRejectsDuplicateCourseCodes(t *testing.T) {
	courses := []models.Course{
		{Code: "X1", Name: "One", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
		{Code: "X1", Name: "Two", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
	}
	_, err := New(courses, nil)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrCatalogInfeasible.Code, appErrors.FromError(err).Code)
}

func TestNewRejectsPathWithUnknownCourse(t *testing.T) {
	courses := []models.Course{
		{Code: "X1", Name: "One", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{{
		Path: models.PathMinimum,
		YearPlans: []models.YearPlan{
			{Year: 1, Semester1: []string{"X1", "MISSING"}, Semester2: []string{"X1"}},
		},
	}}
	_, err := New(courses, paths)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrCatalogInfeasible.Code, appErrors.FromError(err).Code)
}

func TestNewRejectsUnknownRoomType(t *testing.T) {
	courses := []models.Course{
		{Code: "X1", Name: "One", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomType("HOLODECK")},
	}
	_, err := New(courses, nil)
	require.Error(t, err)
}

func TestNewRejectsPrerequisiteTakenInLaterYear(t *testing.T) {
	courses := []models.Course{
		{Code: "INTRO", Name: "Intro", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
		{Code: "ADV", Name: "Advanced", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"INTRO"}},
	}
	paths := []models.PathPlan{{
		Path: models.PathMinimum,
		YearPlans: []models.YearPlan{
			{Year: 1, Semester1: []string{"ADV"}, Semester2: []string{"ADV"}},
			{Year: 2, Semester1: []string{"INTRO"}, Semester2: []string{"INTRO"}},
		},
	}}
	_, err := New(courses, paths)
	require.Error(t, err)
}

func TestFingerprintStableAndContentSensitive(t *testing.T) {
	a, err := Builtin()
	require.NoError(t, err)
	b, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, a.Fingerprint())
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	courses := []models.Course{
		{Code: "X1", Name: "One", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{{
		Path: models.PathMinimum,
		YearPlans: []models.YearPlan{
			{Year: 1, Semester1: []string{"X1"}, Semester2: []string{"X1"}},
		},
	}}
	small, err := New(courses, paths)
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), small.Fingerprint())
}

func TestActualClassroomsHaveDeterministicIDs(t *testing.T) {
	rooms := ActualClassrooms(25)
	require.NotEmpty(t, rooms)

	total := 0
	seen := make(map[string]bool)
	for _, room := range rooms {
		require.False(t, seen[room.ID], "duplicate room id %s", room.ID)
		seen[room.ID] = true
		total++
		if room.RoomType == models.RoomGym {
			require.Equal(t, 50, room.Capacity)
		} else {
			require.Equal(t, 25, room.Capacity)
		}
	}

	expected := 0
	for _, count := range ActualRooms() {
		expected += count
	}
	require.Equal(t, expected, total)
}
