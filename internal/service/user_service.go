package service

import (
	"time"

	"academic-attendance-backend/internal/models"
)

// UserService covers the admin-facing user management surface: listings,
// deactivation and the dashboard summary.
type UserService struct {
	users       UserStore
	courses     CourseStore
	attendances AttendanceStore
	tokens      RefreshTokenStore
}

func NewUserService(users UserStore, courses CourseStore, attendances AttendanceStore, tokens RefreshTokenStore) *UserService {
	return &UserService{
		users:       users,
		courses:     courses,
		attendances: attendances,
		tokens:      tokens,
	}
}

// DashboardSummary is the admin landing-page aggregate
type DashboardSummary struct {
	Students           int64 `json:"students"`
	Teachers           int64 `json:"teachers"`
	ActiveCourses      int64 `json:"active_courses"`
	CoursesMarkedToday int64 `json:"courses_marked_today"`
}

// ListTeachers retrieves active teachers, used to populate course assignment
func (s *UserService) ListTeachers() ([]UserResponse, error) {
	teachers, err := s.users.ListByRole(models.RoleTeacher)
	if err != nil {
		return nil, internalErr("retrieving teachers", err)
	}
	return toUserResponses(teachers), nil
}

// ListUsers retrieves all users, optionally filtered to one role
func (s *UserService) ListUsers(role *models.Role) ([]UserResponse, error) {
	var (
		users []models.User
		err   error
	)
	if role != nil {
		users, err = s.users.ListByRole(*role)
	} else {
		users, err = s.users.ListAll()
	}
	if err != nil {
		return nil, internalErr("retrieving users", err)
	}
	return toUserResponses(users), nil
}

// Deactivate soft-deactivates an account and revokes its live refresh tokens
// so the holder cannot mint new access tokens.
func (s *UserService) Deactivate(userID uint) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return internalErr("deactivating user", err)
	}
	if user == nil {
		return notFoundErr("User not found")
	}

	user.Status = models.StatusInactive
	if err := s.users.Update(user); err != nil {
		return internalErr("deactivating user", err)
	}

	if err := s.tokens.RevokeAllForUser(userID, time.Now().UTC()); err != nil {
		return internalErr("deactivating user", err)
	}
	return nil
}

// Reactivate restores a previously deactivated account
func (s *UserService) Reactivate(userID uint) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return internalErr("reactivating user", err)
	}
	if user == nil {
		return notFoundErr("User not found")
	}

	user.Status = models.StatusActive
	if err := s.users.Update(user); err != nil {
		return internalErr("reactivating user", err)
	}
	return nil
}

// Dashboard computes the summary counts
func (s *UserService) Dashboard() (*DashboardSummary, error) {
	students, err := s.users.CountByRole(models.RoleStudent)
	if err != nil {
		return nil, internalErr("building dashboard", err)
	}

	teachers, err := s.users.CountByRole(models.RoleTeacher)
	if err != nil {
		return nil, internalErr("building dashboard", err)
	}

	courses, err := s.courses.CountActive()
	if err != nil {
		return nil, internalErr("building dashboard", err)
	}

	markedToday, err := s.attendances.CountCoursesMarkedOn(time.Now().UTC())
	if err != nil {
		return nil, internalErr("building dashboard", err)
	}

	return &DashboardSummary{
		Students:           students,
		Teachers:           teachers,
		ActiveCourses:      courses,
		CoursesMarkedToday: markedToday,
	}, nil
}

func toUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		regNo := ""
		if u.RegistrationNumber != nil {
			regNo = *u.RegistrationNumber
		}
		responses = append(responses, UserResponse{
			ID:                 u.ID,
			FirstName:          u.FirstName,
			LastName:           u.LastName,
			Email:              u.Email,
			Role:               string(u.Role),
			RegistrationNumber: regNo,
		})
	}
	return responses
}
