package models

import "time"

// Course represents the courses table
type Course struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CourseCode  string       `gorm:"uniqueIndex;not null;size:20" json:"course_code"`
	CourseName  string       `gorm:"not null;size:255" json:"course_name"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	CreditHours int          `gorm:"not null" json:"credit_hours"`
	TeacherID   uint         `gorm:"not null;index" json:"teacher_id"`
	Status      RecordStatus `gorm:"type:enum('Active','Inactive');default:'Active'" json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Teacher     *User        `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

// TableName specifies the table name for Course model
func (Course) TableName() string {
	return "courses"
}

// IsActive reports whether the course has not been soft-deleted
func (c *Course) IsActive() bool {
	return c.Status == StatusActive
}
