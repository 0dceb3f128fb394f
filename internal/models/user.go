package models

import "time"

// Role is the user's role in the system
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

// RecordStatus is the lifecycle state of a soft-deletable record.
// Records are deactivated, never hard-deleted.
type RecordStatus string

const (
	StatusActive   RecordStatus = "Active"
	StatusInactive RecordStatus = "Inactive"
)

// User represents the users table
type User struct {
	ID                 uint         `gorm:"primaryKey" json:"id"`
	FirstName          string       `gorm:"size:100;not null" json:"first_name"`
	LastName           string       `gorm:"size:100;not null" json:"last_name"`
	Email              string       `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash       string       `gorm:"not null;size:255" json:"-"`
	Role               Role         `gorm:"type:enum('Admin','Teacher','Student');not null" json:"role"`
	RegistrationNumber *string      `gorm:"uniqueIndex;size:50" json:"registration_number,omitempty"`
	Status             RecordStatus `gorm:"type:enum('Active','Inactive');default:'Active'" json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsActive reports whether the account has not been deactivated
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
