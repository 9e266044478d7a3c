package service

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
)

func TestPlanDatasetListsClassroomsThenTeachers(t *testing.T) {
	cat := testCatalog(t)
	reports := NewReportService(cat, nil)
	calc := NewResourceCalculatorService(cat, nil, nil, nil)

	plan, err := calc.ComputeResources(context.Background(), dto.ResourcePlanRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 30},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)

	data := reports.PlanDataset(*plan)
	require.Equal(t, []string{"Category", "Resource", "Count", "AP Qualified"}, data.Headers)
	require.NotEmpty(t, data.Rows)

	sawTeacher := false
	for _, row := range data.Rows {
		switch row["Category"] {
		case "Classroom":
			require.False(t, sawTeacher, "classroom rows must precede teacher rows")
		case "Teacher":
			sawTeacher = true
		}
	}
	require.True(t, sawTeacher)
}

func TestScheduleDatasetIsPeriodOrdered(t *testing.T) {
	cat := smallCatalog(t)
	calc := NewResourceCalculatorService(cat, nil, nil, nil)
	scheduler := NewSchedulerService(cat, calc, NewRunStore(time.Minute), nil, nil, nil)
	reports := NewReportService(cat, nil)

	run, err := scheduler.BuildSchedule(context.Background(), dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 40},
			MaxClassSize:  20,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)

	data := reports.ScheduleDataset(*run, 1)
	require.NotEmpty(t, data.Rows)
	last := ""
	for _, row := range data.Rows {
		require.True(t, row["Period"] >= last || last == "",
			"rows must be ordered by period")
		last = row["Period"]
		require.NotEmpty(t, row["Teacher"])
		require.NotEmpty(t, row["Classroom"])
	}
}

func TestTeacherLoadDatasetCountsSectionsPerTeacher(t *testing.T) {
	cat := smallCatalog(t)
	calc := NewResourceCalculatorService(cat, nil, nil, nil)
	scheduler := NewSchedulerService(cat, calc, NewRunStore(time.Minute), nil, nil, nil)
	reports := NewReportService(cat, nil)

	run, err := scheduler.BuildSchedule(context.Background(), dto.BuildScheduleRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 40},
			MaxClassSize:  20,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)

	data := reports.TeacherLoadDataset(*run, 1)
	require.Equal(t, []string{"Teacher", "Sections", "Courses"}, data.Headers)
	require.NotEmpty(t, data.Rows)

	want := run.Timetable.TeacherLoad(1)
	require.Len(t, data.Rows, len(want))
	last := ""
	for _, row := range data.Rows {
		require.True(t, last == "" || row["Teacher"] > last, "rows must be ordered by teacher")
		last = row["Teacher"]
		require.Equal(t, strconv.Itoa(want[row["Teacher"]]), row["Sections"])
		require.NotEmpty(t, row["Courses"])
	}
}

func TestRenderCSVEscapesAndIncludesHeaders(t *testing.T) {
	reports := NewReportService(testCatalog(t), nil)
	out, err := reports.RenderCSV(reports.PlanDataset(models.ResourcePlan{
		Classrooms: map[models.RoomType]int{models.RoomGeneral: 2},
		Teachers:   map[models.SubjectArea]models.TeacherNeed{models.SubjectMath: {Total: 1}},
	}))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Equal(t, "Category,Resource,Count,AP Qualified", strings.TrimSpace(lines[0]))
	require.Len(t, lines, 3)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	reports := NewReportService(testCatalog(t), nil)
	out, err := reports.RenderPDF(reports.PlanDataset(models.ResourcePlan{
		Classrooms: map[models.RoomType]int{models.RoomGeneral: 2},
	}), "Resource Plan")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "%PDF"))
}
