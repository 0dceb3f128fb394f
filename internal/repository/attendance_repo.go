package repository

import (
	"errors"
	"time"

	"academic-attendance-backend/internal/models"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// FindByID finds an attendance record by id. Returns (nil, nil) when absent.
func (r *AttendanceRepository) FindByID(id uint) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.Preload("Student").Preload("Course").First(&attendance, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendance, nil
}

// ExistsForCourseDate reports whether any attendance rows exist for the
// course on the given calendar date
func (r *AttendanceRepository) ExistsForCourseDate(courseID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("course_id = ? AND date = ?", courseID, date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

// CreateBatch inserts the whole roster in a single statement. GORM wraps the
// multi-row insert in a transaction, so a unique-index violation on any row
// rolls back the lot.
func (r *AttendanceRepository) CreateBatch(records []models.Attendance) error {
	return r.db.Create(&records).Error
}

// Update saves changes to an existing attendance record
func (r *AttendanceRepository) Update(attendance *models.Attendance) error {
	return r.db.Save(attendance).Error
}

// ListByStudent retrieves a student's attendance, newest first, optionally
// restricted to one course
func (r *AttendanceRepository) ListByStudent(studentID uint, courseID *uint) ([]models.Attendance, error) {
	query := r.db.Where("student_id = ?", studentID)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}

	var attendances []models.Attendance
	err := query.Preload("Student").Preload("Course").
		Order("date DESC").
		Find(&attendances).Error
	return attendances, err
}

// ListByCourse retrieves a course's attendance, newest first, optionally
// restricted to one calendar date
func (r *AttendanceRepository) ListByCourse(courseID uint, date *time.Time) ([]models.Attendance, error) {
	query := r.db.Where("course_id = ?", courseID)
	if date != nil {
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}

	var attendances []models.Attendance
	err := query.Preload("Student").Preload("Course").
		Order("date DESC").
		Find(&attendances).Error
	return attendances, err
}

// ListForStudentCourse retrieves the rows feeding a percentage computation,
// with inclusive date bounds applied in the query
func (r *AttendanceRepository) ListForStudentCourse(studentID, courseID uint, startDate, endDate *time.Time) ([]models.Attendance, error) {
	query := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID)
	if startDate != nil {
		query = query.Where("date >= ?", startDate.Format("2006-01-02"))
	}
	if endDate != nil {
		query = query.Where("date <= ?", endDate.Format("2006-01-02"))
	}

	var attendances []models.Attendance
	err := query.Find(&attendances).Error
	return attendances, err
}

// CountCoursesMarkedOn counts distinct courses with attendance on the date
func (r *AttendanceRepository) CountCoursesMarkedOn(date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("date = ?", date.Format("2006-01-02")).
		Distinct("course_id").
		Count(&count).Error
	return count, err
}
