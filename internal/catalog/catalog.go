// Package catalog holds the immutable course catalog, graduation path
// plans and facility inventory. A Catalog is built once at startup
// (from the built-in data or a database load) and never mutated, so
// concurrent what-if runs can share it freely.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// Catalog is the injected, read-only configuration every run consumes.
type Catalog struct {
	courses     map[string]models.Course
	paths       map[models.GraduationPath]models.PathPlan
	fingerprint string
}

// New assembles and validates a catalog. Validation failures surface as
// CATALOG_INFEASIBLE errors and no catalog is returned.
func New(courses []models.Course, paths []models.PathPlan) (*Catalog, error) {
	c := &Catalog{
		courses: make(map[string]models.Course, len(courses)),
		paths:   make(map[models.GraduationPath]models.PathPlan, len(paths)),
	}
	for _, course := range courses {
		if _, dup := c.courses[course.Code]; dup {
			return nil, appErrors.Clone(appErrors.ErrCatalogInfeasible,
				fmt.Sprintf("duplicate course code %s", course.Code))
		}
		c.courses[course.Code] = course
	}
	for _, plan := range paths {
		c.paths[plan.Path] = plan
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.fingerprint = c.computeFingerprint()
	return c, nil
}

// Fingerprint identifies the catalog contents. Two catalogs with the
// same courses and path plans hash the same regardless of source, so
// cache keys built on it survive restarts and multi-instance sharing.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func (c *Catalog) computeFingerprint() string {
	h := sha256.New()
	for _, course := range c.Courses() {
		fmt.Fprintf(h, "course|%s|%s|%s|%s|%d|%d|%s|%s\n",
			course.Code, course.Name, course.SubjectArea, course.Level,
			course.Credits, course.Semesters, course.RoomType,
			strings.Join(course.Prerequisites, ","))
	}
	pathNames := make([]string, 0, len(c.paths))
	for path := range c.paths {
		pathNames = append(pathNames, string(path))
	}
	sort.Strings(pathNames)
	for _, name := range pathNames {
		plan := c.paths[models.GraduationPath(name)]
		for _, yp := range plan.YearPlans {
			fmt.Fprintf(h, "path|%s|%d|%s|%s\n", name, yp.Year,
				strings.Join(yp.Semester1, ","), strings.Join(yp.Semester2, ","))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	return New(builtinCourses(), builtinPaths())
}

// Course looks up a course by code.
func (c *Catalog) Course(code string) (models.Course, bool) {
	course, ok := c.courses[code]
	return course, ok
}

// Courses returns all courses sorted by code.
func (c *Catalog) Courses() []models.Course {
	out := make([]models.Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Path returns the plan for one graduation path.
func (c *Catalog) Path(p models.GraduationPath) (models.PathPlan, bool) {
	plan, ok := c.paths[p]
	return plan, ok
}

// Paths returns every path plan in track order.
func (c *Catalog) Paths() []models.PathPlan {
	out := make([]models.PathPlan, 0, len(c.paths))
	for _, p := range models.AllGraduationPaths {
		if plan, ok := c.paths[p]; ok {
			out = append(out, plan)
		}
	}
	return out
}

// RequiredCourses returns the codes required by any path, sorted.
func (c *Catalog) RequiredCourses() []string {
	seen := make(map[string]struct{})
	for _, plan := range c.paths {
		for _, yp := range plan.YearPlans {
			for _, code := range yp.Courses() {
				seen[code] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// validate enforces catalog integrity: every room type defined, every
// prerequisite resolvable, every path course present, and prerequisite
// chains consistent with the year a path schedules the course in.
func (c *Catalog) validate() error {
	for code, course := range c.courses {
		if !course.RoomType.Valid() {
			return appErrors.Clone(appErrors.ErrCatalogInfeasible,
				fmt.Sprintf("course %s requires undefined room type %q", code, course.RoomType))
		}
		for _, prereq := range course.Prerequisites {
			if _, ok := c.courses[prereq]; !ok {
				return appErrors.Clone(appErrors.ErrCatalogInfeasible,
					fmt.Sprintf("course %s references unknown prerequisite %s", code, prereq))
			}
		}
	}
	for path, plan := range c.paths {
		if err := c.validatePlan(path, plan); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) validatePlan(path models.GraduationPath, plan models.PathPlan) error {
	courseYear := make(map[string]int)
	for _, yp := range plan.YearPlans {
		for _, code := range yp.Courses() {
			if _, ok := c.courses[code]; !ok {
				return appErrors.Clone(appErrors.ErrCatalogInfeasible,
					fmt.Sprintf("path %s year %d references unknown course %s", path, yp.Year, code))
			}
			if _, ok := courseYear[code]; !ok {
				courseYear[code] = yp.Year
			}
		}
	}
	// Prerequisites must be completed in a strictly earlier year when the
	// path takes both courses.
	for code, year := range courseYear {
		course := c.courses[code]
		for _, prereq := range course.Prerequisites {
			if prereqYear, taken := courseYear[prereq]; taken && prereqYear >= year {
				return appErrors.Clone(appErrors.ErrCatalogInfeasible,
					fmt.Sprintf("path %s schedules %s in year %d but prerequisite %s in year %d",
						path, code, year, prereq, prereqYear))
			}
		}
	}
	return nil
}
