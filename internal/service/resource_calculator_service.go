package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// planCache stores computed plans keyed by scenario hash. A nil cache
// disables caching without changing calculator behaviour.
type planCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}

// ResourceCalculatorService derives the minimum classroom and teacher
// inventory for an enrollment scenario. The computation is a pure
// function of the scenario and the injected catalog.
type ResourceCalculatorService struct {
	catalog   *catalog.Catalog
	cache     planCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResourceCalculatorService wires the calculator.
func NewResourceCalculatorService(cat *catalog.Catalog, cache planCache, validate *validator.Validate, logger *zap.Logger) *ResourceCalculatorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceCalculatorService{catalog: cat, cache: cache, validator: validate, logger: logger}
}

// ComputeResources validates the scenario and returns the complete
// resource plan, consulting the cache when one is configured. Either a
// full plan or an error, never a partial result.
func (s *ResourceCalculatorService) ComputeResources(ctx context.Context, req dto.ResourcePlanRequest) (*models.ResourcePlan, error) {
	if err := s.validateScenario(req.EnrollmentScenario); err != nil {
		return nil, err
	}

	if s.cache != nil {
		key := scenarioCacheKey(s.catalog.Fingerprint(), req.EnrollmentScenario)
		cached := &models.ResourcePlan{}
		if err := s.cache.Get(ctx, key, cached); err == nil {
			return cached, nil
		}
		plan := s.compute(req.EnrollmentScenario)
		if err := s.cache.Set(ctx, key, plan); err != nil {
			s.logger.Warn("plan cache write failed", zap.Error(err))
		}
		return plan, nil
	}

	return s.compute(req.EnrollmentScenario), nil
}

func (s *ResourceCalculatorService) validateScenario(scenario dto.EnrollmentScenario) error {
	if err := s.validator.Struct(scenario); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment scenario")
	}
	for path, count := range scenario.Enrollment {
		if !path.Valid() {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown graduation path %q", path))
		}
		if count < 0 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("enrollment for %s must not be negative", path))
		}
		if _, ok := s.catalog.Path(path); !ok {
			return appErrors.Clone(appErrors.ErrCatalogInfeasible, fmt.Sprintf("no plan defined for path %s", path))
		}
	}
	return nil
}

// compute runs the sizing pipeline. Sections merge by course+year
// across paths, ceiling division throughout, and a teacher day is
// periods_per_day minus the planning period.
func (s *ResourceCalculatorService) compute(scenario dto.EnrollmentScenario) *models.ResourcePlan {
	demand := s.courseDemand(scenario.Enrollment)

	courseSections := make([]models.CourseSections, 0, len(demand))
	for key, enrolled := range demand {
		courseSections = append(courseSections, models.CourseSections{
			CourseCode: key.code,
			Year:       key.year,
			Enrolled:   enrolled,
			Sections:   ceilDiv(enrolled, scenario.MaxClassSize),
		})
	}
	sort.Slice(courseSections, func(i, j int) bool {
		if courseSections[i].CourseCode == courseSections[j].CourseCode {
			return courseSections[i].Year < courseSections[j].Year
		}
		return courseSections[i].CourseCode < courseSections[j].CourseCode
	})

	plan := &models.ResourcePlan{
		Classrooms:     s.classroomMinimums(courseSections, scenario.PeriodsPerDay),
		Teachers:       s.teacherMinimums(courseSections, scenario.PeriodsPerDay),
		CourseSections: courseSections,
	}
	for _, count := range plan.Classrooms {
		plan.TotalClassrooms += count
	}
	for _, need := range plan.Teachers {
		plan.TotalTeachers += need.Total
	}
	return plan
}

type courseYear struct {
	code string
	year int
}

// courseDemand accumulates enrolled students per course and program
// year. Cohorts from different paths taking the same course in the same
// year merge for sectioning.
func (s *ResourceCalculatorService) courseDemand(enrollment map[models.GraduationPath]int) map[courseYear]int {
	demand := make(map[courseYear]int)
	for path, students := range enrollment {
		if students == 0 {
			continue
		}
		plan, ok := s.catalog.Path(path)
		if !ok {
			continue
		}
		for _, yp := range plan.YearPlans {
			for _, code := range yp.Courses() {
				demand[courseYear{code: code, year: yp.Year}] += students
			}
		}
	}
	return demand
}

// classroomMinimums produces the structural lower bound per room type:
// all grades run simultaneously, each room hosts periods_per_day
// sections, so rooms = ceil(total sections of the type / periods).
func (s *ResourceCalculatorService) classroomMinimums(sections []models.CourseSections, periodsPerDay int) map[models.RoomType]int {
	roomSections := make(map[models.RoomType]int)
	for _, cs := range sections {
		course, ok := s.catalog.Course(cs.CourseCode)
		if !ok {
			continue
		}
		roomSections[course.RoomType] += cs.Sections
	}

	minRooms := make(map[models.RoomType]int, len(roomSections))
	for roomType, total := range roomSections {
		minRooms[roomType] = ceilDiv(total, periodsPerDay)
	}
	return minRooms
}

// teacherMinimums sizes each subject's staff. AP teachers are counted
// first and their spare periods absorb regular sections before extra
// regular-only teachers are added, so APQualified is a subset of Total.
func (s *ResourceCalculatorService) teacherMinimums(sections []models.CourseSections, periodsPerDay int) map[models.SubjectArea]models.TeacherNeed {
	maxTeaching := periodsPerDay - 1 // planning period reserved
	if maxTeaching < 1 {
		maxTeaching = 1
	}

	type subjectLoad struct {
		ap      int
		regular int
	}
	loads := make(map[models.SubjectArea]*subjectLoad)
	for _, cs := range sections {
		course, ok := s.catalog.Course(cs.CourseCode)
		if !ok {
			continue
		}
		load := loads[course.SubjectArea]
		if load == nil {
			load = &subjectLoad{}
			loads[course.SubjectArea] = load
		}
		if course.IsAP() {
			load.ap += cs.Sections
		} else {
			load.regular += cs.Sections
		}
	}

	needs := make(map[models.SubjectArea]models.TeacherNeed, len(loads))
	for subject, load := range loads {
		apTeachers := ceilDiv(load.ap, maxTeaching)
		spare := apTeachers*maxTeaching - load.ap
		remaining := load.regular - spare
		if remaining < 0 {
			remaining = 0
		}
		regularTeachers := ceilDiv(remaining, maxTeaching)
		needs[subject] = models.TeacherNeed{
			Total:       apTeachers + regularTeachers,
			APQualified: apTeachers,
		}
	}
	return needs
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
