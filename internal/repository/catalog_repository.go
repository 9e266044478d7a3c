package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// CatalogRepository loads the course catalog and path plans from
// Postgres. Schools that maintain their offerings in a registrar
// database use this loader at startup instead of the builtin catalog.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates the loader.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type courseRow struct {
	Code        string `db:"code"`
	Name        string `db:"name"`
	SubjectArea string `db:"subject_area"`
	Level       string `db:"level"`
	Credits     int    `db:"credits"`
	Semesters   int    `db:"semesters"`
	RoomType    string `db:"room_type"`
	Description string `db:"description"`
}

// LoadCourses reads every course and its prerequisite edges.
func (r *CatalogRepository) LoadCourses(ctx context.Context) ([]models.Course, error) {
	var rows []courseRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT code, name, subject_area, level, credits, semesters, room_type, COALESCE(description, '') AS description
		FROM courses
		ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		prereqs, err := r.loadPrerequisites(ctx, row.Code)
		if err != nil {
			return nil, err
		}
		courses = append(courses, models.Course{
			Code:          row.Code,
			Name:          row.Name,
			SubjectArea:   models.SubjectArea(row.SubjectArea),
			Level:         models.CourseLevel(row.Level),
			Credits:       row.Credits,
			Semesters:     row.Semesters,
			RoomType:      models.RoomType(row.RoomType),
			Prerequisites: prereqs,
			Description:   row.Description,
		})
	}
	return courses, nil
}

func (r *CatalogRepository) loadPrerequisites(ctx context.Context, code string) ([]string, error) {
	var prereqs []string
	err := r.db.SelectContext(ctx, &prereqs, `
		SELECT prerequisite_code
		FROM course_prerequisites
		WHERE course_code = $1
		ORDER BY prerequisite_code`, code)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load prerequisites for %s: %w", code, err)
	}
	return prereqs, nil
}

type pathCourseRow struct {
	Path     string `db:"path"`
	Year     int    `db:"year"`
	Semester int    `db:"semester"`
	Code     string `db:"course_code"`
}

// LoadPaths reads the path plans. Rows hold one (path, year, semester,
// course) tuple each; year-long courses appear once per semester.
func (r *CatalogRepository) LoadPaths(ctx context.Context) ([]models.PathPlan, error) {
	var rows []pathCourseRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT path, year, semester, course_code
		FROM path_courses
		ORDER BY path, year, semester, course_code`)
	if err != nil {
		return nil, fmt.Errorf("load path plans: %w", err)
	}

	byPath := make(map[models.GraduationPath]*models.PathPlan)
	var order []models.GraduationPath
	for _, row := range rows {
		if row.Year < 1 {
			return nil, appErrors.Clone(appErrors.ErrCatalogInfeasible,
				fmt.Sprintf("path %s schedules %s in invalid year %d", row.Path, row.Code, row.Year))
		}
		if row.Semester != 1 && row.Semester != 2 {
			return nil, appErrors.Clone(appErrors.ErrCatalogInfeasible,
				fmt.Sprintf("path %s schedules %s in invalid semester %d", row.Path, row.Code, row.Semester))
		}
		path := models.GraduationPath(row.Path)
		plan, ok := byPath[path]
		if !ok {
			plan = &models.PathPlan{Path: path, Description: path.Label()}
			byPath[path] = plan
			order = append(order, path)
		}
		for len(plan.YearPlans) < row.Year {
			plan.YearPlans = append(plan.YearPlans, models.YearPlan{Year: len(plan.YearPlans) + 1})
		}
		yp := &plan.YearPlans[row.Year-1]
		if row.Semester == 1 {
			yp.Semester1 = append(yp.Semester1, row.Code)
		} else {
			yp.Semester2 = append(yp.Semester2, row.Code)
		}
	}

	plans := make([]models.PathPlan, 0, len(order))
	for _, path := range order {
		plans = append(plans, *byPath[path])
	}
	return plans, nil
}
