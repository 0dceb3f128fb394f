package service

import (
	"fmt"
	"strings"
	"time"

	"academic-attendance-backend/internal/models"
)

type AttendanceService struct {
	attendances AttendanceStore
	courses     CourseStore
	enrollments EnrollmentStore
	users       UserStore
}

func NewAttendanceService(
	attendances AttendanceStore,
	courses CourseStore,
	enrollments EnrollmentStore,
	users UserStore,
) *AttendanceService {
	return &AttendanceService{
		attendances: attendances,
		courses:     courses,
		enrollments: enrollments,
		users:       users,
	}
}

// AttendanceEntry is one student's status within a roster submission
type AttendanceEntry struct {
	StudentID uint
	Status    models.AttendanceStatus
	Remarks   string
}

// AttendanceRecord is the attendance shape returned to callers
type AttendanceRecord struct {
	ID                 uint      `json:"id"`
	StudentID          uint      `json:"student_id"`
	StudentName        string    `json:"student_name"`
	RegistrationNumber string    `json:"registration_number"`
	CourseName         string    `json:"course_name"`
	Date               time.Time `json:"date"`
	Status             string    `json:"status"`
	Remarks            string    `json:"remarks,omitempty"`
}

// Mark records attendance for a whole course roster on one calendar date.
// Every constraint is checked before any row is written, and the batch is
// inserted as a unit: a caller never observes a half-marked roster.
func (s *AttendanceService) Mark(courseID uint, date time.Time, teacherID uint, entries []AttendanceEntry) error {
	if len(entries) == 0 {
		return validationErr("No attendance records submitted")
	}

	var invalid []string
	for _, entry := range entries {
		if !entry.Status.Valid() {
			invalid = append(invalid, fmt.Sprintf("Invalid status for student %d", entry.StudentID))
		}
	}
	if len(invalid) > 0 {
		return validationErr("Invalid attendance submission", invalid...)
	}

	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return internalErr("marking attendance", err)
	}
	if course == nil {
		return notFoundErr("Course not found")
	}

	if course.TeacherID != teacherID {
		return authorizationErr("You are not authorized to mark attendance for this course")
	}

	day := truncateToDate(date)

	exists, err := s.attendances.ExistsForCourseDate(courseID, day)
	if err != nil {
		return internalErr("marking attendance", err)
	}
	if exists {
		return conflictErr(fmt.Sprintf("Attendance has already been marked for %s", day.Format("2006-01-02")))
	}

	for _, entry := range entries {
		enrollment, err := s.enrollments.FindActive(entry.StudentID, courseID)
		if err != nil {
			return internalErr("marking attendance", err)
		}
		if enrollment == nil {
			return validationErr(fmt.Sprintf("Student ID %d is not enrolled in this course", entry.StudentID))
		}
	}

	now := time.Now().UTC()
	records := make([]models.Attendance, 0, len(entries))
	for _, entry := range entries {
		records = append(records, models.Attendance{
			StudentID: entry.StudentID,
			CourseID:  courseID,
			Date:      day,
			Status:    entry.Status,
			Remarks:   strings.TrimSpace(entry.Remarks),
			MarkedBy:  teacherID,
			MarkedAt:  now,
		})
	}

	if err := s.attendances.CreateBatch(records); err != nil {
		return internalErr("marking attendance", err)
	}
	return nil
}

// Update replaces the status and remarks of one attendance record. Only the
// teacher owning the record's course may do so; the marked-at timestamp is
// left as originally written.
func (s *AttendanceService) Update(attendanceID uint, status models.AttendanceStatus, remarks string, teacherID uint) (*AttendanceRecord, error) {
	if !status.Valid() {
		return nil, validationErr("Invalid attendance status")
	}

	attendance, err := s.attendances.FindByID(attendanceID)
	if err != nil {
		return nil, internalErr("updating attendance", err)
	}
	if attendance == nil {
		return nil, notFoundErr("Attendance record not found")
	}

	course, err := s.courses.FindByID(attendance.CourseID)
	if err != nil {
		return nil, internalErr("updating attendance", err)
	}
	if course == nil || course.TeacherID != teacherID {
		return nil, authorizationErr("You are not authorized to update this attendance record")
	}

	attendance.Status = status
	attendance.Remarks = strings.TrimSpace(remarks)

	if err := s.attendances.Update(attendance); err != nil {
		return nil, internalErr("updating attendance", err)
	}

	record := buildRecord(attendance)
	return &record, nil
}

// ListByStudent retrieves a student's attendance, newest first, optionally
// restricted to one course
func (s *AttendanceService) ListByStudent(studentID uint, courseID *uint) ([]AttendanceRecord, error) {
	attendances, err := s.attendances.ListByStudent(studentID, courseID)
	if err != nil {
		return nil, internalErr("retrieving attendance", err)
	}
	return buildRecords(attendances), nil
}

// ListByCourse retrieves a course's attendance, optionally for one date
func (s *AttendanceService) ListByCourse(courseID uint, date *time.Time) ([]AttendanceRecord, error) {
	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, internalErr("retrieving course attendance", err)
	}
	if course == nil {
		return nil, notFoundErr("Course not found")
	}

	attendances, err := s.attendances.ListByCourse(courseID, date)
	if err != nil {
		return nil, internalErr("retrieving course attendance", err)
	}
	return buildRecords(attendances), nil
}

func buildRecords(attendances []models.Attendance) []AttendanceRecord {
	records := make([]AttendanceRecord, 0, len(attendances))
	for i := range attendances {
		records = append(records, buildRecord(&attendances[i]))
	}
	return records
}

func buildRecord(a *models.Attendance) AttendanceRecord {
	record := AttendanceRecord{
		ID:                 a.ID,
		StudentID:          a.StudentID,
		StudentName:        "Unknown",
		RegistrationNumber: "N/A",
		CourseName:         "Unknown",
		Date:               a.Date,
		Status:             string(a.Status),
		Remarks:            a.Remarks,
	}
	if a.Student != nil {
		record.StudentName = a.Student.FullName()
		if a.Student.RegistrationNumber != nil {
			record.RegistrationNumber = *a.Student.RegistrationNumber
		}
	}
	if a.Course != nil {
		record.CourseName = a.Course.CourseName
	}
	return record
}

// truncateToDate strips the time-of-day component; attendance is keyed by
// calendar date only
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
