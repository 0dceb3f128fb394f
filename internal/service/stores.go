package service

import (
	"time"

	"academic-attendance-backend/internal/models"
)

// The services talk to storage through these per-entity accessors, implemented
// by the gorm repositories. Lookups return (nil, nil) for "not there" so the
// services own the decision of what absence means.

type UserStore interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByRegistrationNumber(regNo string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	ListByRole(role models.Role) ([]models.User, error)
	ListAll() ([]models.User, error)
	CountByRole(role models.Role) (int64, error)
}

type CourseStore interface {
	FindByID(id uint) (*models.Course, error)
	FindByCode(code string) (*models.Course, error)
	Create(course *models.Course) error
	Update(course *models.Course) error
	ListActive() ([]models.Course, error)
	ListByTeacher(teacherID uint) ([]models.Course, error)
	SoftDelete(id uint) error
	CountActive() (int64, error)
}

type EnrollmentStore interface {
	FindActive(studentID, courseID uint) (*models.Enrollment, error)
	Create(enrollment *models.Enrollment) error
	Update(enrollment *models.Enrollment) error
	ListActiveByStudent(studentID uint) ([]models.Enrollment, error)
	ListActiveByCourse(courseID uint) ([]models.Enrollment, error)
	CountActiveByCourse(courseID uint) (int64, error)
}

type AttendanceStore interface {
	FindByID(id uint) (*models.Attendance, error)
	ExistsForCourseDate(courseID uint, date time.Time) (bool, error)
	CreateBatch(records []models.Attendance) error
	Update(attendance *models.Attendance) error
	ListByStudent(studentID uint, courseID *uint) ([]models.Attendance, error)
	ListByCourse(courseID uint, date *time.Time) ([]models.Attendance, error)
	ListForStudentCourse(studentID, courseID uint, startDate, endDate *time.Time) ([]models.Attendance, error)
	CountCoursesMarkedOn(date time.Time) (int64, error)
}

type RefreshTokenStore interface {
	Create(token *models.RefreshToken) error
	FindByHash(hash string) (*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	Rotate(old *models.RefreshToken, replacement *models.RefreshToken) error
	RevokeAllForUser(userID uint, now time.Time) error
}
