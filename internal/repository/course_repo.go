package repository

import (
	"errors"

	"academic-attendance-backend/internal/models"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// FindByID finds a course by id regardless of status. Returns (nil, nil) when absent.
func (r *CourseRepository) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("Teacher").First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// FindByCode finds a course by its code, case-insensitively
func (r *CourseRepository) FindByCode(code string) (*models.Course, error) {
	var course models.Course
	err := r.db.Where("LOWER(course_code) = LOWER(?)", code).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// Create creates a new course
func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// Update saves changes to an existing course
func (r *CourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

// ListActive retrieves all active courses with their teachers, ordered by code
func (r *CourseRepository) ListActive() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("status = ?", models.StatusActive).
		Preload("Teacher").
		Order("course_code ASC").
		Find(&courses).Error
	return courses, err
}

// ListByTeacher retrieves a teacher's active courses, ordered by code
func (r *CourseRepository) ListByTeacher(teacherID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("teacher_id = ? AND status = ?", teacherID, models.StatusActive).
		Preload("Teacher").
		Order("course_code ASC").
		Find(&courses).Error
	return courses, err
}

// SoftDelete marks a course inactive without removing the row
func (r *CourseRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Course{}).
		Where("id = ?", id).
		Update("status", models.StatusInactive).Error
}

// CountActive counts active courses
func (r *CourseRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Course{}).
		Where("status = ?", models.StatusActive).
		Count(&count).Error
	return count, err
}
