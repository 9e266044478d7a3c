package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
	"github.com/agathon991/class-schedule-creator/pkg/export"
)

// ReportService flattens plans and timetables into tabular exports.
type ReportService struct {
	catalog *catalog.Catalog
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewReportService wires the exporters.
func NewReportService(cat *catalog.Catalog, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		catalog: cat,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// PlanDataset flattens a resource plan: classroom rows first, teacher
// rows second, stable order throughout.
func (s *ReportService) PlanDataset(plan models.ResourcePlan) export.Dataset {
	data := export.Dataset{Headers: []string{"Category", "Resource", "Count", "AP Qualified"}}
	for _, roomType := range models.AllRoomTypes {
		count, ok := plan.Classrooms[roomType]
		if !ok {
			continue
		}
		data.Rows = append(data.Rows, map[string]string{
			"Category":     "Classroom",
			"Resource":     string(roomType),
			"Count":        strconv.Itoa(count),
			"AP Qualified": "",
		})
	}
	for _, subject := range models.AllSubjectAreas {
		need, ok := plan.Teachers[subject]
		if !ok {
			continue
		}
		data.Rows = append(data.Rows, map[string]string{
			"Category":     "Teacher",
			"Resource":     string(subject),
			"Count":        strconv.Itoa(need.Total),
			"AP Qualified": strconv.Itoa(need.APQualified),
		})
	}
	return data
}

// ScheduleDataset flattens one semester of a run into period order.
func (s *ReportService) ScheduleDataset(run dto.BuildScheduleResponse, semester int) export.Dataset {
	data := export.Dataset{Headers: []string{"Period", "Classroom", "Course", "Year", "Teacher", "Enrolled"}}

	sections := make([]models.Section, 0, len(run.Timetable.Sections))
	for _, section := range run.Timetable.Sections {
		if section.Status == models.SectionScheduled && section.Semester == semester {
			sections = append(sections, section)
		}
	}
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Period != sections[j].Period {
			return sections[i].Period < sections[j].Period
		}
		if sections[i].ClassroomID != sections[j].ClassroomID {
			return sections[i].ClassroomID < sections[j].ClassroomID
		}
		return sections[i].ID < sections[j].ID
	})

	for _, section := range sections {
		name := section.CourseCode
		if course, ok := s.catalog.Course(section.CourseCode); ok {
			name = fmt.Sprintf("%s (%s)", course.Name, course.Code)
		}
		data.Rows = append(data.Rows, map[string]string{
			"Period":    strconv.Itoa(section.Period),
			"Classroom": section.ClassroomID,
			"Course":    name,
			"Year":      strconv.Itoa(section.Year),
			"Teacher":   section.TeacherID,
			"Enrolled":  strconv.Itoa(section.Enrolled),
		})
	}
	return data
}

// TeacherLoadDataset flattens one semester of a run into per-teacher
// rows: how many sections each teacher carries and which courses.
func (s *ReportService) TeacherLoadDataset(run dto.BuildScheduleResponse, semester int) export.Dataset {
	data := export.Dataset{Headers: []string{"Teacher", "Sections", "Courses"}}

	load := run.Timetable.TeacherLoad(semester)
	courses := make(map[string][]string)
	for _, section := range run.Timetable.Sections {
		if section.Status == models.SectionScheduled && section.Semester == semester {
			courses[section.TeacherID] = append(courses[section.TeacherID], section.CourseCode)
		}
	}

	teachers := make([]string, 0, len(load))
	for id := range load {
		teachers = append(teachers, id)
	}
	sort.Strings(teachers)

	for _, id := range teachers {
		taught := courses[id]
		sort.Strings(taught)
		data.Rows = append(data.Rows, map[string]string{
			"Teacher":  id,
			"Sections": strconv.Itoa(load[id]),
			"Courses":  strings.Join(taught, " "),
		})
	}
	return data
}

// RenderCSV serialises a dataset to CSV bytes.
func (s *ReportService) RenderCSV(data export.Dataset) ([]byte, error) {
	out, err := s.csv.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
	}
	return out, nil
}

// RenderPDF serialises a dataset to PDF bytes.
func (s *ReportService) RenderPDF(data export.Dataset, title string) ([]byte, error) {
	out, err := s.pdf.Render(data, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
	}
	return out, nil
}
