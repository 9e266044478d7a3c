package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// SchedulerService assigns every required section a (period, classroom,
// teacher) triple using a greedy most-constrained-first strategy.
// Sections that cannot be placed are reported with a reason code rather
// than failing the run.
type SchedulerService struct {
	catalog   *catalog.Catalog
	calc      *ResourceCalculatorService
	runs      *runStore
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSchedulerService wires the scheduler. Completed runs are retained
// in the store for the configured TTL so they can be fetched and
// exported after the fact. A nil metrics service disables reporting.
func NewSchedulerService(cat *catalog.Catalog, calc *ResourceCalculatorService, runs *runStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *SchedulerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulerService{catalog: cat, calc: calc, runs: runs, metrics: metrics, validator: validate, logger: logger}
}

// BuildSchedule computes the resource plan for the scenario, assembles
// the classroom and teacher pools, and places every section. The run is
// stored under a fresh ID and returned in full.
func (s *SchedulerService) BuildSchedule(ctx context.Context, req dto.BuildScheduleRequest) (*dto.BuildScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule request")
	}

	plan, err := s.calc.ComputeResources(ctx, dto.ResourcePlanRequest{EnrollmentScenario: req.EnrollmentScenario})
	if err != nil {
		return nil, err
	}

	classrooms := req.Classrooms
	if len(classrooms) == 0 {
		if req.UseActualFacilities {
			classrooms = catalog.ActualClassrooms(req.MaxClassSize)
		} else {
			classrooms = synthesizeClassrooms(plan, req.MaxClassSize)
		}
	}
	teachers := req.Teachers
	if len(teachers) == 0 {
		teachers = synthesizeTeachers(plan, req.PeriodsPerDay)
	}

	started := time.Now()
	timetable, unplaced := s.place(plan, classrooms, teachers, req.PeriodsPerDay)
	if s.metrics != nil {
		byReason := make(map[string]int)
		for _, u := range unplaced {
			byReason[string(u.Reason)]++
		}
		s.metrics.ObserveScheduleRun(time.Since(started), byReason)
	}

	resp := &dto.BuildScheduleResponse{
		RunID:      uuid.NewString(),
		Plan:       *plan,
		Timetable:  timetable,
		Unplaced:   unplaced,
		Violations: timetable.Validate(),
	}
	if len(resp.Violations) > 0 {
		s.logger.Error("timetable violates exclusivity invariants",
			zap.String("run_id", resp.RunID),
			zap.Strings("violations", resp.Violations))
	}
	if s.runs != nil {
		s.runs.Save(resp.RunID, resp)
	}

	s.logger.Info("schedule run complete",
		zap.String("run_id", resp.RunID),
		zap.Int("sections", len(timetable.Sections)),
		zap.Int("unplaced", len(unplaced)))
	return resp, nil
}

// GetRun fetches a retained run by ID. Expired runs report not found.
func (s *SchedulerService) GetRun(runID string) (*dto.BuildScheduleResponse, error) {
	if s.runs == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule run not found")
	}
	resp, ok := s.runs.Get(runID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule run not found")
	}
	return resp, nil
}

// sectionJob is one section awaiting placement. Year-long courses span
// both semesters and must hold the same slot in each.
type sectionJob struct {
	course    models.Course
	year      int
	enrolled  int
	ordinal   int
	semesters []int
}

type slot struct {
	semester int
	period   int
	id       string
}

type semesterTeacher struct {
	semester  int
	teacherID string
}

type placementState struct {
	busyRooms    map[slot]bool
	busyTeachers map[slot]bool
	teacherLoad  map[semesterTeacher]int
	lastJob      map[string]int // teacherID -> index into placed
}

// place runs the greedy pass: jobs sorted most-constrained-first, each
// placed into the first feasible period. A post-pass audits planning
// periods and grants one bounded retry to sections it has to pull back.
func (s *SchedulerService) place(plan *models.ResourcePlan, classrooms []models.Classroom, teachers []models.Teacher, periodsPerDay int) (models.Timetable, []models.UnplacedSection) {
	jobs := s.buildJobs(plan)
	orderJobs(jobs)

	state := &placementState{
		busyRooms:    make(map[slot]bool),
		busyTeachers: make(map[slot]bool),
		teacherLoad:  make(map[semesterTeacher]int),
		lastJob:      make(map[string]int),
	}

	var placed []placedJob
	var unplaced []models.UnplacedSection
	for _, job := range jobs {
		p, reason := s.attempt(job, classrooms, teachers, periodsPerDay, state, false)
		if p == nil {
			unplaced = append(unplaced, models.UnplacedSection{CourseCode: job.course.Code, Year: job.year, Reason: reason})
			continue
		}
		state.commit(*p, len(placed))
		placed = append(placed, *p)
	}

	placed, unplaced = s.enforcePlanningPeriods(placed, unplaced, classrooms, teachers, periodsPerDay, state)

	timetable := models.Timetable{
		Classrooms: classrooms,
		Teachers:   teachers,
		PeriodsPer: periodsPerDay,
	}
	for _, p := range placed {
		for _, semester := range p.job.semesters {
			timetable.Sections = append(timetable.Sections, models.Section{
				ID:          fmt.Sprintf("%s_Y%d_%d_SEM%d", p.job.course.Code, p.job.year, p.job.ordinal, semester),
				CourseCode:  p.job.course.Code,
				Year:        p.job.year,
				Enrolled:    p.job.enrolled,
				Semester:    semester,
				Period:      p.period,
				ClassroomID: p.roomID,
				TeacherID:   p.teacherID,
				Status:      models.SectionScheduled,
			})
		}
	}
	return timetable, unplaced
}

type placedJob struct {
	job       sectionJob
	period    int
	roomID    string
	teacherID string
}

func (st *placementState) commit(p placedJob, index int) {
	for _, semester := range p.job.semesters {
		st.busyRooms[slot{semester, p.period, p.roomID}] = true
		st.busyTeachers[slot{semester, p.period, p.teacherID}] = true
		st.teacherLoad[semesterTeacher{semester, p.teacherID}]++
	}
	st.lastJob[p.teacherID] = index
}

func (st *placementState) release(p placedJob) {
	for _, semester := range p.job.semesters {
		delete(st.busyRooms, slot{semester, p.period, p.roomID})
		delete(st.busyTeachers, slot{semester, p.period, p.teacherID})
		st.teacherLoad[semesterTeacher{semester, p.teacherID}]--
	}
}

// attempt finds the first feasible period for the job. When strictDay is
// set every teacher is held to periodsPerDay-1 regardless of their own
// limit, which guarantees a planning period on retry placements.
func (s *SchedulerService) attempt(job sectionJob, classrooms []models.Classroom, teachers []models.Teacher, periodsPerDay int, st *placementState, strictDay bool) (*placedJob, models.UnplacedReason) {
	anyRoom := false
	anyTeacher := false
	for period := 1; period <= periodsPerDay; period++ {
		roomID := ""
		for _, room := range classrooms {
			if !room.CanHost(job.course) {
				continue
			}
			if st.roomFree(room.ID, period, job.semesters) {
				roomID = room.ID
				break
			}
		}
		teacherID := ""
		for _, t := range teachers {
			if !t.CanTeach(job.course) {
				continue
			}
			if st.teacherFree(t, period, job.semesters, periodsPerDay, strictDay) {
				teacherID = t.ID
				break
			}
		}
		if roomID != "" {
			anyRoom = true
		}
		if teacherID != "" {
			anyTeacher = true
		}
		if roomID != "" && teacherID != "" {
			return &placedJob{job: job, period: period, roomID: roomID, teacherID: teacherID}, ""
		}
	}
	switch {
	case !anyRoom:
		return nil, models.ReasonNoClassroom
	case !anyTeacher:
		return nil, models.ReasonNoTeacher
	default:
		return nil, models.ReasonNoPeriod
	}
}

func (st *placementState) roomFree(roomID string, period int, semesters []int) bool {
	for _, semester := range semesters {
		if st.busyRooms[slot{semester, period, roomID}] {
			return false
		}
	}
	return true
}

func (st *placementState) teacherFree(t models.Teacher, period int, semesters []int, periodsPerDay int, strictDay bool) bool {
	limit := t.MaxPeriods
	if limit <= 0 {
		limit = periodsPerDay - 1
	}
	if strictDay && limit > periodsPerDay-1 {
		limit = periodsPerDay - 1
	}
	if limit < 1 {
		limit = 1
	}
	for _, semester := range semesters {
		if st.busyTeachers[slot{semester, period, t.ID}] {
			return false
		}
		if st.teacherLoad[semesterTeacher{semester, t.ID}] >= limit {
			return false
		}
	}
	return true
}

// enforcePlanningPeriods audits every teacher for at least one free
// period per semester. A teacher scheduled wall to wall has their most
// recent section pulled and retried once under the strict day limit;
// a failed retry surfaces as an unplaced section.
func (s *SchedulerService) enforcePlanningPeriods(placed []placedJob, unplaced []models.UnplacedSection, classrooms []models.Classroom, teachers []models.Teacher, periodsPerDay int, st *placementState) ([]placedJob, []models.UnplacedSection) {
	flagged := make(map[int]bool)
	for _, t := range teachers {
		for semester := 1; semester <= 2; semester++ {
			if st.teacherLoad[semesterTeacher{semester, t.ID}] < periodsPerDay {
				continue
			}
			if idx, ok := st.lastJob[t.ID]; ok {
				flagged[idx] = true
			}
		}
	}
	if len(flagged) == 0 {
		return placed, unplaced
	}

	kept := placed[:0]
	var retries []sectionJob
	for i, p := range placed {
		if flagged[i] {
			st.release(p)
			retries = append(retries, p.job)
			continue
		}
		kept = append(kept, p)
	}

	for _, job := range retries {
		p, reason := s.attempt(job, classrooms, teachers, periodsPerDay, st, true)
		if p == nil {
			s.logger.Warn("planning period retry failed",
				zap.String("course", job.course.Code),
				zap.Int("year", job.year),
				zap.String("reason", string(reason)))
			unplaced = append(unplaced, models.UnplacedSection{CourseCode: job.course.Code, Year: job.year, Reason: reason})
			continue
		}
		st.commit(*p, len(kept))
		kept = append(kept, *p)
	}
	return kept, unplaced
}

// buildJobs expands the plan's section counts into individual jobs,
// splitting each course's enrollment as evenly as ceiling division
// allows and resolving which semesters each section occupies.
func (s *SchedulerService) buildJobs(plan *models.ResourcePlan) []sectionJob {
	var jobs []sectionJob
	for _, cs := range plan.CourseSections {
		course, ok := s.catalog.Course(cs.CourseCode)
		if !ok {
			continue
		}
		semesters := []int{1, 2}
		if course.Semesters == 1 {
			semesters = []int{s.semesterFor(course.Code)}
		}
		for n := 1; n <= cs.Sections; n++ {
			enrolled := cs.Enrolled / cs.Sections
			if n <= cs.Enrolled%cs.Sections {
				enrolled++
			}
			jobs = append(jobs, sectionJob{
				course:    course,
				year:      cs.Year,
				enrolled:  enrolled,
				ordinal:   n,
				semesters: semesters,
			})
		}
	}
	return jobs
}

// semesterFor resolves the term of a single-semester course from the
// path plans, defaulting to semester 1 when no plan pins it down.
func (s *SchedulerService) semesterFor(code string) int {
	inSecond := false
	for _, plan := range s.catalog.Paths() {
		for _, yp := range plan.YearPlans {
			for _, c := range yp.Semester1 {
				if c == code {
					return 1
				}
			}
			for _, c := range yp.Semester2 {
				if c == code {
					inSecond = true
				}
			}
		}
	}
	if inSecond {
		return 2
	}
	return 1
}

// orderJobs sorts most-constrained-first: AP sections, then sections
// needing special rooms, then alphabetically for determinism.
func orderJobs(jobs []sectionJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if a.course.IsAP() != b.course.IsAP() {
			return a.course.IsAP()
		}
		if a.course.NeedsSpecialRoom() != b.course.NeedsSpecialRoom() {
			return a.course.NeedsSpecialRoom()
		}
		if a.course.Code != b.course.Code {
			return a.course.Code < b.course.Code
		}
		if a.year != b.year {
			return a.year < b.year
		}
		return a.ordinal < b.ordinal
	})
}

// synthesizeClassrooms materialises the plan's per-type minimums into
// concrete rooms with deterministic IDs.
func synthesizeClassrooms(plan *models.ResourcePlan, capacity int) []models.Classroom {
	var rooms []models.Classroom
	for _, roomType := range models.AllRoomTypes {
		count := plan.Classrooms[roomType]
		for i := 1; i <= count; i++ {
			rooms = append(rooms, models.Classroom{
				ID:       fmt.Sprintf("%s_%d", roomType, i),
				Name:     fmt.Sprintf("%s %d", roomType, i),
				RoomType: roomType,
				Capacity: capacity,
			})
		}
	}
	return rooms
}

// synthesizeTeachers materialises the plan's per-subject minimums.
// AP-qualified staff come first within each subject so the first-fit
// teacher scan sends regular sections to AP teachers' spare periods.
func synthesizeTeachers(plan *models.ResourcePlan, periodsPerDay int) []models.Teacher {
	maxPeriods := periodsPerDay - 1
	if maxPeriods < 1 {
		maxPeriods = 1
	}
	var teachers []models.Teacher
	for _, subject := range models.AllSubjectAreas {
		need := plan.Teachers[subject]
		for i := 1; i <= need.APQualified; i++ {
			teachers = append(teachers, models.Teacher{
				ID:          fmt.Sprintf("%s_AP_%d", subject, i),
				Name:        fmt.Sprintf("%s AP Teacher %d", subject, i),
				SubjectArea: subject,
				APQualified: true,
				MaxPeriods:  maxPeriods,
			})
		}
		for i := 1; i <= need.Total-need.APQualified; i++ {
			teachers = append(teachers, models.Teacher{
				ID:          fmt.Sprintf("%s_%d", subject, i),
				Name:        fmt.Sprintf("%s Teacher %d", subject, i),
				SubjectArea: subject,
				APQualified: false,
				MaxPeriods:  maxPeriods,
			})
		}
	}
	return teachers
}
