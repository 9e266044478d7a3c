package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

func newCapacity(t *testing.T) *CapacityService {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	calc := NewResourceCalculatorService(cat, nil, nil, nil)
	return NewCapacityService(calc, nil, nil)
}

func TestCapacityCheckSmallCohortIsFeasible(t *testing.T) {
	svc := newCapacity(t)
	result, err := svc.Check(context.Background(), dto.CapacityCheckRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 10},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)
	require.True(t, result.Feasible)
	require.Empty(t, result.Bottleneck)
	for _, room := range result.Rooms {
		require.True(t, room.Feasible, "room type %s oversubscribed for a 10 student cohort", room.RoomType)
	}
	require.Greater(t, result.Teachers.Total, 0)
}

func TestCapacityCheckHugeCohortReportsBottleneck(t *testing.T) {
	svc := newCapacity(t)
	result, err := svc.Check(context.Background(), dto.CapacityCheckRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment: map[models.GraduationPath]int{
				models.PathMinimum:     2000,
				models.PathPreMed:      2000,
				models.PathEngineering: 2000,
			},
			MaxClassSize:  25,
			PeriodsPerDay: 6,
		},
	})
	require.NoError(t, err)
	require.False(t, result.Feasible)
	require.NotEmpty(t, result.Bottleneck)
}

func TestCapacityCheckRejectsInvalidScenario(t *testing.T) {
	svc := newCapacity(t)
	_, err := svc.Check(context.Background(), dto.CapacityCheckRequest{
		EnrollmentScenario: dto.EnrollmentScenario{
			Enrollment:    map[models.GraduationPath]int{models.PathMinimum: 10},
			MaxClassSize:  0,
			PeriodsPerDay: 6,
		},
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestMaxEnrollmentFindsPositiveCeiling(t *testing.T) {
	svc := newCapacity(t)
	result, err := svc.MaxEnrollment(context.Background(), 25, 6)
	require.NoError(t, err)
	require.Greater(t, result.MaxPerPath, 0)
	require.Equal(t, result.MaxPerPath*3, result.TotalStudents)

	// One student beyond the ceiling must fail the same audit.
	over := dto.EnrollmentScenario{
		Enrollment:    make(map[models.GraduationPath]int),
		MaxClassSize:  25,
		PeriodsPerDay: 6,
	}
	for _, path := range models.AllGraduationPaths {
		over.Enrollment[path] = result.MaxPerPath + 1
	}
	check, err := svc.Check(context.Background(), dto.CapacityCheckRequest{EnrollmentScenario: over})
	require.NoError(t, err)
	require.False(t, check.Feasible)
}

func TestMaxEnrollmentRejectsInvalidArguments(t *testing.T) {
	svc := newCapacity(t)
	_, err := svc.MaxEnrollment(context.Background(), 0, 6)
	require.Error(t, err)
	_, err = svc.MaxEnrollment(context.Background(), 25, 0)
	require.Error(t, err)
}
