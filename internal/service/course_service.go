package service

import (
	"strings"

	"academic-attendance-backend/internal/models"
)

type CourseService struct {
	courses     CourseStore
	users       UserStore
	enrollments EnrollmentStore
}

func NewCourseService(courses CourseStore, users UserStore, enrollments EnrollmentStore) *CourseService {
	return &CourseService{
		courses:     courses,
		users:       users,
		enrollments: enrollments,
	}
}

// CourseDetail is the course shape returned to callers
type CourseDetail struct {
	ID               uint   `json:"id"`
	CourseCode       string `json:"course_code"`
	CourseName       string `json:"course_name"`
	Description      string `json:"description,omitempty"`
	CreditHours      int    `json:"credit_hours"`
	TeacherID        uint   `json:"teacher_id"`
	TeacherName      string `json:"teacher_name"`
	EnrolledStudents int64  `json:"enrolled_students"`
	IsEnrolled       bool   `json:"is_enrolled"`
	CreatedAt        string `json:"created_at"`
}

type CourseInput struct {
	CourseCode  string
	CourseName  string
	Description string
	CreditHours int
	TeacherID   uint
}

// List retrieves all active courses. For students, IsEnrolled reflects
// whether the caller holds an active enrollment.
func (s *CourseService) List(userID uint, role models.Role) ([]CourseDetail, error) {
	courses, err := s.courses.ListActive()
	if err != nil {
		return nil, internalErr("retrieving courses", err)
	}

	details := make([]CourseDetail, 0, len(courses))
	for i := range courses {
		detail, err := s.buildDetail(&courses[i], userID, role)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, nil
}

// GetByID retrieves a single course
func (s *CourseService) GetByID(id uint, userID uint, role models.Role) (*CourseDetail, error) {
	course, err := s.courses.FindByID(id)
	if err != nil {
		return nil, internalErr("retrieving course", err)
	}
	if course == nil {
		return nil, notFoundErr("Course not found")
	}

	return s.buildDetail(course, userID, role)
}

// ListByTeacher retrieves a teacher's active courses
func (s *CourseService) ListByTeacher(teacherID uint) ([]CourseDetail, error) {
	teacher, err := s.users.FindByID(teacherID)
	if err != nil {
		return nil, internalErr("retrieving teacher courses", err)
	}
	if teacher == nil {
		return nil, notFoundErr("Teacher not found")
	}

	courses, err := s.courses.ListByTeacher(teacherID)
	if err != nil {
		return nil, internalErr("retrieving teacher courses", err)
	}

	details := make([]CourseDetail, 0, len(courses))
	for i := range courses {
		detail, err := s.buildDetail(&courses[i], 0, "")
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, nil
}

// Create creates a new course. Only users holding the Teacher role may be
// assigned as its teacher.
func (s *CourseService) Create(input CourseInput) (*CourseDetail, error) {
	code := strings.ToUpper(strings.TrimSpace(input.CourseCode))

	existing, err := s.courses.FindByCode(code)
	if err != nil {
		return nil, internalErr("creating course", err)
	}
	if existing != nil {
		return nil, conflictErr("Course code already exists")
	}

	if err := s.verifyTeacher(input.TeacherID); err != nil {
		return nil, err
	}

	course := &models.Course{
		CourseCode:  code,
		CourseName:  strings.TrimSpace(input.CourseName),
		Description: strings.TrimSpace(input.Description),
		CreditHours: input.CreditHours,
		TeacherID:   input.TeacherID,
		Status:      models.StatusActive,
	}

	if err := s.courses.Create(course); err != nil {
		return nil, internalErr("creating course", err)
	}

	return s.buildDetail(course, 0, "")
}

// Update edits a course's mutable fields. Permitted for admins and the
// owning teacher.
func (s *CourseService) Update(id uint, input CourseInput, userID uint, role models.Role) (*CourseDetail, error) {
	course, err := s.courses.FindByID(id)
	if err != nil {
		return nil, internalErr("updating course", err)
	}
	if course == nil {
		return nil, notFoundErr("Course not found")
	}

	if role != models.RoleAdmin && course.TeacherID != userID {
		return nil, authorizationErr("You are not authorized to update this course")
	}

	code := strings.ToUpper(strings.TrimSpace(input.CourseCode))
	if !strings.EqualFold(course.CourseCode, code) {
		existing, err := s.courses.FindByCode(code)
		if err != nil {
			return nil, internalErr("updating course", err)
		}
		if existing != nil && existing.ID != id {
			return nil, conflictErr("Course code already exists")
		}
	}

	if err := s.verifyTeacher(input.TeacherID); err != nil {
		return nil, err
	}

	course.CourseCode = code
	course.CourseName = strings.TrimSpace(input.CourseName)
	course.Description = strings.TrimSpace(input.Description)
	course.CreditHours = input.CreditHours
	course.TeacherID = input.TeacherID
	course.Teacher = nil

	if err := s.courses.Update(course); err != nil {
		return nil, internalErr("updating course", err)
	}

	return s.buildDetail(course, 0, "")
}

// Delete soft deletes a course. Admins may delete any course, teachers only
// their own.
func (s *CourseService) Delete(id uint, userID uint, role models.Role) error {
	course, err := s.courses.FindByID(id)
	if err != nil {
		return internalErr("deleting course", err)
	}
	if course == nil {
		return notFoundErr("Course not found")
	}

	if role != models.RoleAdmin && course.TeacherID != userID {
		return authorizationErr("You are not authorized to delete this course")
	}

	if err := s.courses.SoftDelete(id); err != nil {
		return internalErr("deleting course", err)
	}
	return nil
}

func (s *CourseService) verifyTeacher(teacherID uint) error {
	teacher, err := s.users.FindByID(teacherID)
	if err != nil {
		return internalErr("verifying teacher", err)
	}
	if teacher == nil {
		return notFoundErr("Teacher not found")
	}
	if teacher.Role != models.RoleTeacher {
		return validationErr("Selected user is not a teacher")
	}
	return nil
}

func (s *CourseService) buildDetail(course *models.Course, userID uint, role models.Role) (*CourseDetail, error) {
	teacherName := "Unknown"
	if course.Teacher != nil {
		teacherName = course.Teacher.FullName()
	} else {
		teacher, err := s.users.FindByID(course.TeacherID)
		if err != nil {
			return nil, internalErr("retrieving course", err)
		}
		if teacher != nil {
			teacherName = teacher.FullName()
		}
	}

	enrolled, err := s.enrollments.CountActiveByCourse(course.ID)
	if err != nil {
		return nil, internalErr("retrieving course", err)
	}

	isEnrolled := false
	if role == models.RoleStudent && userID != 0 {
		enrollment, err := s.enrollments.FindActive(userID, course.ID)
		if err != nil {
			return nil, internalErr("retrieving course", err)
		}
		isEnrolled = enrollment != nil
	}

	return &CourseDetail{
		ID:               course.ID,
		CourseCode:       course.CourseCode,
		CourseName:       course.CourseName,
		Description:      course.Description,
		CreditHours:      course.CreditHours,
		TeacherID:        course.TeacherID,
		TeacherName:      teacherName,
		EnrolledStudents: enrolled,
		IsEnrolled:       isEnrolled,
		CreatedAt:        course.CreatedAt.Format("2006-01-02"),
	}, nil
}
