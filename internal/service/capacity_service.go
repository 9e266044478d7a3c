package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// CapacityService answers feasibility questions against the school's
// actual room inventory rather than a synthesized one.
type CapacityService struct {
	calc      *ResourceCalculatorService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCapacityService wires the capacity checker.
func NewCapacityService(calc *ResourceCalculatorService, validate *validator.Validate, logger *zap.Logger) *CapacityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CapacityService{calc: calc, validator: validate, logger: logger}
}

// Check audits a scenario against the actual facilities. Demand per room
// type is measured in sections, supply in room-periods; the bottleneck
// is the worst oversubscribed type.
func (s *CapacityService) Check(ctx context.Context, req dto.CapacityCheckRequest) (*dto.CapacityCheckResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid capacity request")
	}
	plan, err := s.calc.ComputeResources(ctx, dto.ResourcePlanRequest{EnrollmentScenario: req.EnrollmentScenario})
	if err != nil {
		return nil, err
	}
	return s.audit(plan, req.PeriodsPerDay), nil
}

func (s *CapacityService) audit(plan *models.ResourcePlan, periodsPerDay int) *dto.CapacityCheckResponse {
	inventory := catalog.ActualRooms()

	demand := make(map[models.RoomType]int)
	for _, cs := range plan.CourseSections {
		code := cs.CourseCode
		course, ok := s.calc.catalog.Course(code)
		if !ok {
			continue
		}
		demand[course.RoomType] += cs.Sections
	}

	resp := &dto.CapacityCheckResponse{Feasible: true}
	worstOver := 0.0
	for _, roomType := range models.AllRoomTypes {
		needed, ok := demand[roomType]
		if !ok {
			continue
		}
		available := inventory[roomType] * periodsPerDay
		pressure := dto.RoomPressure{
			RoomType:       roomType,
			SectionsNeeded: needed,
			Available:      available,
			Feasible:       needed <= available,
		}
		resp.Rooms = append(resp.Rooms, pressure)
		if !pressure.Feasible {
			resp.Feasible = false
			over := float64(needed + 1) // no rooms at all ranks worst
			if available > 0 {
				over = float64(needed) / float64(available)
			}
			if over > worstOver {
				worstOver = over
				resp.Bottleneck = roomType
			}
		}
	}
	sort.Slice(resp.Rooms, func(i, j int) bool {
		return resp.Rooms[i].RoomType < resp.Rooms[j].RoomType
	})

	for _, need := range plan.Teachers {
		resp.Teachers.Total += need.Total
		resp.Teachers.APQualified += need.APQualified
	}
	return resp
}

// MaxEnrollment sweeps uniform per-path enrollment upward and returns
// the largest value the actual facilities still accept.
func (s *CapacityService) MaxEnrollment(ctx context.Context, maxClassSize, periodsPerDay int) (*dto.MaxEnrollmentResponse, error) {
	if maxClassSize < 1 || periodsPerDay < 1 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "maxClassSize and periodsPerDay must be positive")
	}

	const ceiling = 500
	best := 0
	for n := 1; n <= ceiling; n++ {
		scenario := dto.EnrollmentScenario{
			Enrollment:    make(map[models.GraduationPath]int, len(models.AllGraduationPaths)),
			MaxClassSize:  maxClassSize,
			PeriodsPerDay: periodsPerDay,
		}
		for _, path := range models.AllGraduationPaths {
			scenario.Enrollment[path] = n
		}
		plan := s.calc.compute(scenario)
		if !s.audit(plan, periodsPerDay).Feasible {
			break
		}
		best = n
	}

	return &dto.MaxEnrollmentResponse{
		MaxPerPath:    best,
		TotalStudents: best * len(models.AllGraduationPaths),
		MaxClassSize:  maxClassSize,
		PeriodsPerDay: periodsPerDay,
	}, nil
}
