package models

import "time"

// AttendanceStatus is the outcome recorded for a student on a class date
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

// Valid reports whether s is one of the known attendance statuses
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Attendance represents the attendances table. The composite unique index on
// (student_id, course_id, date) is the source of truth for the one-record-per-day
// rule; the service-level duplicate check only exists for a friendlier error.
type Attendance struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	StudentID uint             `gorm:"not null;uniqueIndex:idx_attendance_student_course_date" json:"student_id"`
	CourseID  uint             `gorm:"not null;uniqueIndex:idx_attendance_student_course_date" json:"course_id"`
	Date      time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_student_course_date" json:"date"`
	Status    AttendanceStatus `gorm:"type:enum('Present','Absent','Late');not null" json:"status"`
	Remarks   string           `gorm:"size:500" json:"remarks,omitempty"`
	MarkedBy  uint             `gorm:"not null" json:"marked_by"`
	MarkedAt  time.Time        `gorm:"not null" json:"marked_at"`
	Student   *User            `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course    *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// TableName specifies the table name for Attendance model
func (Attendance) TableName() string {
	return "attendances"
}
