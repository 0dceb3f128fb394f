package repository

import (
	"errors"

	"academic-attendance-backend/internal/models"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindActive finds the current enrollment for a (student, course) pair.
// Returns (nil, nil) when the student is not actively enrolled.
func (r *EnrollmentRepository) FindActive(studentID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.Where("student_id = ? AND course_id = ? AND status = ?",
		studentID, courseID, models.StatusActive).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

// Update saves changes to an existing enrollment
func (r *EnrollmentRepository) Update(enrollment *models.Enrollment) error {
	return r.db.Save(enrollment).Error
}

// ListActiveByStudent retrieves a student's active enrollments with courses
func (r *EnrollmentRepository) ListActiveByStudent(studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("student_id = ? AND status = ?", studentID, models.StatusActive).
		Preload("Course").
		Find(&enrollments).Error
	return enrollments, err
}

// ListActiveByCourse retrieves a course's active enrollments with students
func (r *EnrollmentRepository) ListActiveByCourse(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("course_id = ? AND status = ?", courseID, models.StatusActive).
		Preload("Student").
		Find(&enrollments).Error
	return enrollments, err
}

// CountActiveByCourse counts a course's active enrollments
func (r *EnrollmentRepository) CountActiveByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND status = ?", courseID, models.StatusActive).
		Count(&count).Error
	return count, err
}
