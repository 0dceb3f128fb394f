package models

import "time"

// Enrollment links a student to a course. Unenrolling flips Status to
// Inactive instead of deleting the row, so enrollment history survives.
// At most one Active row may exist per (student, course) pair.
type Enrollment struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	StudentID  uint         `gorm:"not null;index:idx_enrollment_student_course" json:"student_id"`
	CourseID   uint         `gorm:"not null;index:idx_enrollment_student_course" json:"course_id"`
	Status     RecordStatus `gorm:"type:enum('Active','Inactive');default:'Active'" json:"status"`
	EnrolledAt time.Time    `json:"enrolled_at"`
	Student    *User        `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course     *Course      `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// TableName specifies the table name for Enrollment model
func (Enrollment) TableName() string {
	return "enrollments"
}

// IsActive reports whether the enrollment is current
func (e *Enrollment) IsActive() bool {
	return e.Status == StatusActive
}
