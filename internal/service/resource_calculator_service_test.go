package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// testCatalog builds a small two-path catalog with an AP course and a
// lab course so sectioning, merging and AP staffing are all exercised.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	courses := []models.Course{
		{Code: "CHEM", Name: "Chemistry", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomChemLab},
		{Code: "MATH-AP", Name: "AP Mathematics", SubjectArea: models.SubjectMath, Level: models.LevelAP, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"MATH1"}},
		{Code: "MATH1", Name: "Mathematics I", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{
		{
			Path: models.PathMinimum,
			YearPlans: []models.YearPlan{
				{Year: 1, Semester1: []string{"MATH1", "CHEM"}, Semester2: []string{"MATH1", "CHEM"}},
				{Year: 2, Semester1: []string{"MATH-AP"}, Semester2: []string{"MATH-AP"}},
			},
		},
		{
			Path: models.PathPreMed,
			YearPlans: []models.YearPlan{
				{Year: 1, Semester1: []string{"MATH1"}, Semester2: []string{"MATH1"}},
				{Year: 2, Semester1: []string{"MATH-AP"}, Semester2: []string{"MATH-AP"}},
			},
		},
	}
	cat, err := catalog.New(courses, paths)
	require.NoError(t, err)
	return cat
}

func TestComputeResourcesMergesDemandAcrossPaths(t *testing.T) {
	calc := NewResourceCalculatorService(testCatalog(t), nil, nil, nil)
	plan, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30, models.PathPreMed: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)

	// 50 students share MATH1 in year 1 regardless of path.
	var math1 *models.CourseSections
	for i := range plan.CourseSections {
		if plan.CourseSections[i].CourseCode == "MATH1" {
			math1 = &plan.CourseSections[i]
		}
	}
	require.NotNil(t, math1)
	require.Equal(t, 50, math1.Enrolled)
	require.Equal(t, 2, math1.Sections)
}

func TestComputeResourcesUsesCeilingDivision(t *testing.T) {
	calc := NewResourceCalculatorService(testCatalog(t), nil, nil, nil)
	plan, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathPreMed: 26},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, plan.SectionsForCourse("MATH1"))
}

func TestComputeResourcesClassroomLowerBound(t *testing.T) {
	calc := NewResourceCalculatorService(testCatalog(t), nil, nil, nil)
	plan, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30, models.PathPreMed: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)

	// 2 MATH1 + 2 MATH-AP sections over 6 periods need one general room;
	// 2 CHEM sections need one chemistry lab.
	require.Equal(t, 1, plan.Classrooms[models.RoomGeneral])
	require.Equal(t, 1, plan.Classrooms[models.RoomChemLab])
	require.Equal(t, 2, plan.TotalClassrooms)
}

func TestComputeResourcesAPTeachersAbsorbRegularSections(t *testing.T) {
	calc := NewResourceCalculatorService(testCatalog(t), nil, nil, nil)
	plan, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30, models.PathPreMed: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)

	// Math needs 2 AP + 2 regular sections. One AP teacher covers 5
	// periods, so the AP hire absorbs the regular load entirely.
	math := plan.Teachers[models.SubjectMath]
	require.Equal(t, 1, math.Total)
	require.Equal(t, 1, math.APQualified)

	science := plan.Teachers[models.SubjectLabScience]
	require.Equal(t, 1, science.Total)
	require.Equal(t, 0, science.APQualified)
}

func TestComputeResourcesZeroEnrollmentPathContributesNothing(t *testing.T) {
	calc := NewResourceCalculatorService(testCatalog(t), nil, nil, nil)
	plan, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 0, models.PathPreMed: 25},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0, plan.SectionsForCourse("CHEM"))
	require.Equal(t, 1, plan.SectionsForCourse("MATH1"))
}

func TestComputeResourcesRejectsInvalidScenario(t *testing.T) {
	calc := NewResourceCalculatorService(testCatalog(t), nil, nil, nil)
	cases := []dto.EnrollmentScenario{
		{Enrollment: map[models.GraduationPath]int{models.PathMinimum: 10}, MaxClassSize: 0, PeriodsPerDay: 6},
		{Enrollment: map[models.GraduationPath]int{models.PathMinimum: -5}, MaxClassSize: 25, PeriodsPerDay: 6},
		{Enrollment: nil, MaxClassSize: 25, PeriodsPerDay: 6},
		{Enrollment: map[models.GraduationPath]int{"UNKNOWN_PATH": 10}, MaxClassSize: 25, PeriodsPerDay: 6},
	}
	for _, scenario := range cases {
		_, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{EnrollmentScenario: scenario})
		require.Error(t, err)
		require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

type planCacheMock struct {
	store map[string][]byte
	gets  int
	hits  int
	sets  int
}

func (m *planCacheMock) Get(ctx context.Context, key string, dest interface{}) error {
	m.gets++
	raw, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	m.hits++
	return json.Unmarshal(raw, dest)
}

func (m *planCacheMock) Set(ctx context.Context, key string, value interface{}) error {
	m.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = raw
	return nil
}

func TestComputeResourcesCachesByScenario(t *testing.T) {
	mock := &planCacheMock{store: make(map[string][]byte)}
	calc := NewResourceCalculatorService(testCatalog(t), mock, nil, nil)
	req := dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	}

	first, err := calc.ComputeResources(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, mock.sets)

	second, err := calc.ComputeResources(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, mock.hits)
	require.Equal(t, first.TotalTeachers, second.TotalTeachers)
	require.Equal(t, first.TotalClassrooms, second.TotalClassrooms)
}

func TestComputeResourcesCacheDistinguishesCatalogs(t *testing.T) {
	mock := &planCacheMock{store: make(map[string][]byte)}
	req := dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathPreMed: 20},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	}

	calcA := NewResourceCalculatorService(testCatalog(t), mock, nil, nil)
	planA, err := calcA.ComputeResources(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 0, planA.Classrooms[models.RoomChemLab])

	// Same scenario against a catalog whose pre-med plan adds a lab
	// course must not be answered from the other catalog's entry.
	courses := []models.Course{
		{Code: "CHEM", Name: "Chemistry", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomChemLab},
		{Code: "MATH1", Name: "Mathematics I", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Semesters: 2, RoomType: models.RoomGeneral},
	}
	paths := []models.PathPlan{
		{
			Path: models.PathPreMed,
			YearPlans: []models.YearPlan{
				{Year: 1, Semester1: []string{"MATH1", "CHEM"}, Semester2: []string{"MATH1", "CHEM"}},
			},
		},
	}
	labCatalog, err := catalog.New(courses, paths)
	require.NoError(t, err)

	calcB := NewResourceCalculatorService(labCatalog, mock, nil, nil)
	planB, err := calcB.ComputeResources(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, planB.Classrooms[models.RoomChemLab])
	require.Equal(t, 2, mock.sets)
}

func TestScenarioCacheKeyIsOrderIndependent(t *testing.T) {
	a := dto.EnrollmentScenario{
		Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 10, models.PathPreMed: 20},
		MaxClassSize:  25,
		PeriodsPerDay: 6,
	}
	b := dto.EnrollmentScenario{
		Enrollment:    map[models.GraduationPath]int{models.PathPreMed: 20, models.PathMinimum: 10},
		MaxClassSize:  25,
		PeriodsPerDay: 6,
	}
	c := dto.EnrollmentScenario{
		Enrollment:    map[models.GraduationPath]int{models.PathPreMed: 20, models.PathMinimum: 11},
		MaxClassSize:  25,
		PeriodsPerDay: 6,
	}
	require.Equal(t, scenarioCacheKey("fp", a), scenarioCacheKey("fp", b))
	require.NotEqual(t, scenarioCacheKey("fp", a), scenarioCacheKey("fp", c))
	require.NotEqual(t, scenarioCacheKey("fp", a), scenarioCacheKey("other", a))
}
