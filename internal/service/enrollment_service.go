package service

import (
	"time"

	"academic-attendance-backend/internal/models"
)

type EnrollmentService struct {
	enrollments EnrollmentStore
	courses     CourseStore
	users       UserStore
}

func NewEnrollmentService(enrollments EnrollmentStore, courses CourseStore, users UserStore) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		courses:     courses,
		users:       users,
	}
}

// EnrollmentDetail is the enrollment shape returned to callers
type EnrollmentDetail struct {
	CourseID           uint      `json:"course_id"`
	CourseCode         string    `json:"course_code"`
	CourseName         string    `json:"course_name"`
	EnrolledAt         time.Time `json:"enrolled_at"`
	StudentID          uint      `json:"student_id,omitempty"`
	StudentName        string    `json:"student_name,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
}

// Enroll creates an active enrollment for the student in the course. A
// student who unenrolled earlier gets a fresh row; a student already actively
// enrolled is rejected.
func (s *EnrollmentService) Enroll(studentID, courseID uint) error {
	student, err := s.users.FindByID(studentID)
	if err != nil {
		return internalErr("enrolling", err)
	}
	if student == nil {
		return notFoundErr("Student not found")
	}
	if student.Role != models.RoleStudent {
		return validationErr("User is not a student")
	}

	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return internalErr("enrolling", err)
	}
	if course == nil {
		return notFoundErr("Course not found")
	}
	if !course.IsActive() {
		return validationErr("Course is not active")
	}

	existing, err := s.enrollments.FindActive(studentID, courseID)
	if err != nil {
		return internalErr("enrolling", err)
	}
	if existing != nil {
		return conflictErr("Student is already enrolled in this course")
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     models.StatusActive,
		EnrolledAt: time.Now().UTC(),
	}

	if err := s.enrollments.Create(enrollment); err != nil {
		return internalErr("enrolling", err)
	}
	return nil
}

// Unenroll deactivates the student's active enrollment. The row is kept so
// enrollment history stays reconstructable.
func (s *EnrollmentService) Unenroll(studentID, courseID uint) error {
	enrollment, err := s.enrollments.FindActive(studentID, courseID)
	if err != nil {
		return internalErr("unenrolling", err)
	}
	if enrollment == nil {
		return notFoundErr("Enrollment not found")
	}

	enrollment.Status = models.StatusInactive
	if err := s.enrollments.Update(enrollment); err != nil {
		return internalErr("unenrolling", err)
	}
	return nil
}

// ListByStudent retrieves the student's active enrollments
func (s *EnrollmentService) ListByStudent(studentID uint) ([]EnrollmentDetail, error) {
	enrollments, err := s.enrollments.ListActiveByStudent(studentID)
	if err != nil {
		return nil, internalErr("retrieving enrollments", err)
	}

	details := make([]EnrollmentDetail, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course == nil {
			continue
		}
		details = append(details, EnrollmentDetail{
			CourseID:   e.CourseID,
			CourseCode: e.Course.CourseCode,
			CourseName: e.Course.CourseName,
			EnrolledAt: e.EnrolledAt,
		})
	}

	return details, nil
}

// ListByCourse retrieves the course roster of actively enrolled students
func (s *EnrollmentService) ListByCourse(courseID uint) ([]EnrollmentDetail, error) {
	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, internalErr("retrieving course enrollments", err)
	}
	if course == nil {
		return nil, notFoundErr("Course not found")
	}

	enrollments, err := s.enrollments.ListActiveByCourse(courseID)
	if err != nil {
		return nil, internalErr("retrieving course enrollments", err)
	}

	details := make([]EnrollmentDetail, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Student == nil {
			continue
		}
		regNo := "N/A"
		if e.Student.RegistrationNumber != nil {
			regNo = *e.Student.RegistrationNumber
		}
		details = append(details, EnrollmentDetail{
			CourseID:           course.ID,
			CourseCode:         course.CourseCode,
			CourseName:         course.CourseName,
			EnrolledAt:         e.EnrolledAt,
			StudentID:          e.StudentID,
			StudentName:        e.Student.FullName(),
			RegistrationNumber: regNo,
		})
	}

	return details, nil
}
