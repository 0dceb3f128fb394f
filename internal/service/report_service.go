package service

import (
	"math"
	"sort"
	"time"

	"academic-attendance-backend/internal/models"
)

type ReportService struct {
	attendances AttendanceStore
	enrollments EnrollmentStore
	courses     CourseStore
	users       UserStore
}

func NewReportService(
	attendances AttendanceStore,
	enrollments EnrollmentStore,
	courses CourseStore,
	users UserStore,
) *ReportService {
	return &ReportService{
		attendances: attendances,
		enrollments: enrollments,
		courses:     courses,
		users:       users,
	}
}

// ReportRow is one (student, course) aggregation line. Field order here is
// the column order of the exported document.
type ReportRow struct {
	StudentName        string  `json:"student_name"`
	RegistrationNumber string  `json:"registration_number"`
	CourseName         string  `json:"course_name"`
	TotalClasses       int     `json:"total_classes"`
	PresentCount       int     `json:"present_count"`
	AbsentCount        int     `json:"absent_count"`
	LateCount          int     `json:"late_count"`
	Percentage         float64 `json:"percentage"`
}

// StudentReport aggregates one student's attendance across their active
// enrollments, optionally restricted to one course and an inclusive date
// range. Rows are ordered by course name.
func (s *ReportService) StudentReport(studentID uint, courseID *uint, startDate, endDate *time.Time) ([]ReportRow, error) {
	student, err := s.users.FindByID(studentID)
	if err != nil {
		return nil, internalErr("generating report", err)
	}
	if student == nil {
		return nil, notFoundErr("Student not found")
	}

	enrollments, err := s.enrollments.ListActiveByStudent(studentID)
	if err != nil {
		return nil, internalErr("generating report", err)
	}

	rows := make([]ReportRow, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if courseID != nil && enrollment.CourseID != *courseID {
			continue
		}

		course := enrollment.Course
		if course == nil {
			course, err = s.courses.FindByID(enrollment.CourseID)
			if err != nil {
				return nil, internalErr("generating report", err)
			}
			if course == nil {
				continue
			}
		}

		row, err := s.buildRow(student, course, startDate, endDate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CourseName < rows[j].CourseName
	})

	return rows, nil
}

// CourseReport aggregates attendance for every student actively enrolled in
// the course, optionally restricted to an inclusive date range. Rows are
// ordered by student name.
func (s *ReportService) CourseReport(courseID uint, startDate, endDate *time.Time) ([]ReportRow, error) {
	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, internalErr("generating course report", err)
	}
	if course == nil {
		return nil, notFoundErr("Course not found")
	}

	enrollments, err := s.enrollments.ListActiveByCourse(courseID)
	if err != nil {
		return nil, internalErr("generating course report", err)
	}

	rows := make([]ReportRow, 0, len(enrollments))
	for _, enrollment := range enrollments {
		student := enrollment.Student
		if student == nil {
			student, err = s.users.FindByID(enrollment.StudentID)
			if err != nil {
				return nil, internalErr("generating course report", err)
			}
			if student == nil {
				continue
			}
		}

		row, err := s.buildRow(student, course, startDate, endDate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].StudentName < rows[j].StudentName
	})

	return rows, nil
}

func (s *ReportService) buildRow(student *models.User, course *models.Course, startDate, endDate *time.Time) (*ReportRow, error) {
	attendances, err := s.attendances.ListForStudentCourse(student.ID, course.ID, startDate, endDate)
	if err != nil {
		return nil, internalErr("generating report", err)
	}

	var present, absent, late int
	for _, a := range attendances {
		switch a.Status {
		case models.AttendancePresent:
			present++
		case models.AttendanceAbsent:
			absent++
		case models.AttendanceLate:
			late++
		}
	}

	regNo := "N/A"
	if student.RegistrationNumber != nil {
		regNo = *student.RegistrationNumber
	}

	return &ReportRow{
		StudentName:        student.FullName(),
		RegistrationNumber: regNo,
		CourseName:         course.CourseName,
		TotalClasses:       len(attendances),
		PresentCount:       present,
		AbsentCount:        absent,
		LateCount:          late,
		Percentage:         AttendancePercentage(present, late, len(attendances)),
	}, nil
}

// AttendancePercentage computes the attended share of total classes, rounded
// to two decimal places. Late counts as attended. Zero classes yields zero.
func AttendancePercentage(present, late, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present+late)/float64(total)*100*100) / 100
}
