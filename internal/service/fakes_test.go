package service

import (
	"strings"
	"time"

	"academic-attendance-backend/internal/models"
)

// In-memory store implementations backing the service tests.

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) add(user models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	} else if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	stored := user
	f.users[stored.ID] = &stored
	return &stored
}

func (f *fakeUserStore) FindByID(id uint) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByRegistrationNumber(regNo string) (*models.User, error) {
	for _, u := range f.users {
		if u.RegistrationNumber != nil && *u.RegistrationNumber == regNo {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) ListByRole(role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role && u.Status == models.StatusActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) ListAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) CountByRole(role models.Role) (int64, error) {
	users, _ := f.ListByRole(role)
	return int64(len(users)), nil
}

type fakeRefreshTokenStore struct {
	rows   map[string]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenStore() *fakeRefreshTokenStore {
	return &fakeRefreshTokenStore{rows: map[string]*models.RefreshToken{}, nextID: 1}
}

func (f *fakeRefreshTokenStore) Create(row *models.RefreshToken) error {
	row.ID = f.nextID
	f.nextID++
	row.CreatedAt = time.Now().UTC()
	f.rows[row.TokenHash] = row
	return nil
}

func (f *fakeRefreshTokenStore) FindByHash(hash string) (*models.RefreshToken, error) {
	return f.rows[hash], nil
}

func (f *fakeRefreshTokenStore) Update(row *models.RefreshToken) error {
	f.rows[row.TokenHash] = row
	return nil
}

func (f *fakeRefreshTokenStore) Rotate(old *models.RefreshToken, replacement *models.RefreshToken) error {
	if err := f.Update(old); err != nil {
		return err
	}
	return f.Create(replacement)
}

func (f *fakeRefreshTokenStore) RevokeAllForUser(userID uint, now time.Time) error {
	for _, row := range f.rows {
		if row.UserID == userID && !row.Revoked && row.ExpiresAt.After(now) {
			row.Revoked = true
			revokedAt := now
			row.RevokedAt = &revokedAt
		}
	}
	return nil
}

func (f *fakeRefreshTokenStore) liveCountForUser(userID uint, now time.Time) int {
	count := 0
	for _, row := range f.rows {
		if row.UserID == userID && row.IsLive(now) {
			count++
		}
	}
	return count
}

type fakeCourseStore struct {
	courses map[uint]*models.Course
	nextID  uint
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[uint]*models.Course{}, nextID: 1}
}

func (f *fakeCourseStore) add(course models.Course) *models.Course {
	if course.ID == 0 {
		course.ID = f.nextID
		f.nextID++
	} else if course.ID >= f.nextID {
		f.nextID = course.ID + 1
	}
	stored := course
	f.courses[stored.ID] = &stored
	return &stored
}

func (f *fakeCourseStore) FindByID(id uint) (*models.Course, error) {
	return f.courses[id], nil
}

func (f *fakeCourseStore) FindByCode(code string) (*models.Course, error) {
	for _, c := range f.courses {
		if strings.EqualFold(c.CourseCode, code) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) Create(course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) Update(course *models.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) ListActive() ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		if c.Status == models.StatusActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListByTeacher(teacherID uint) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		if c.TeacherID == teacherID && c.Status == models.StatusActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) SoftDelete(id uint) error {
	if c, ok := f.courses[id]; ok {
		c.Status = models.StatusInactive
	}
	return nil
}

func (f *fakeCourseStore) CountActive() (int64, error) {
	courses, _ := f.ListActive()
	return int64(len(courses)), nil
}

type fakeEnrollmentStore struct {
	enrollments []*models.Enrollment
	nextID      uint
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{nextID: 1}
}

func (f *fakeEnrollmentStore) add(enrollment models.Enrollment) *models.Enrollment {
	if enrollment.ID == 0 {
		enrollment.ID = f.nextID
		f.nextID++
	}
	stored := enrollment
	f.enrollments = append(f.enrollments, &stored)
	return &stored
}

func (f *fakeEnrollmentStore) FindActive(studentID, courseID uint) (*models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID && e.Status == models.StatusActive {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrollmentStore) Create(enrollment *models.Enrollment) error {
	enrollment.ID = f.nextID
	f.nextID++
	f.enrollments = append(f.enrollments, enrollment)
	return nil
}

func (f *fakeEnrollmentStore) Update(enrollment *models.Enrollment) error {
	for i, e := range f.enrollments {
		if e.ID == enrollment.ID {
			f.enrollments[i] = enrollment
			return nil
		}
	}
	return nil
}

func (f *fakeEnrollmentStore) ListActiveByStudent(studentID uint) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.Status == models.StatusActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListActiveByCourse(courseID uint) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.Status == models.StatusActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) CountActiveByCourse(courseID uint) (int64, error) {
	enrollments, _ := f.ListActiveByCourse(courseID)
	return int64(len(enrollments)), nil
}

type fakeAttendanceStore struct {
	records []models.Attendance
	nextID  uint
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{nextID: 1}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (f *fakeAttendanceStore) FindByID(id uint) (*models.Attendance, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) ExistsForCourseDate(courseID uint, date time.Time) (bool, error) {
	for _, r := range f.records {
		if r.CourseID == courseID && sameDate(r.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceStore) CreateBatch(records []models.Attendance) error {
	for _, r := range records {
		r.ID = f.nextID
		f.nextID++
		f.records = append(f.records, r)
	}
	return nil
}

func (f *fakeAttendanceStore) Update(attendance *models.Attendance) error {
	for i := range f.records {
		if f.records[i].ID == attendance.ID {
			f.records[i] = *attendance
			return nil
		}
	}
	return nil
}

func (f *fakeAttendanceStore) ListByStudent(studentID uint, courseID *uint) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, r := range f.records {
		if r.StudentID != studentID {
			continue
		}
		if courseID != nil && r.CourseID != *courseID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListByCourse(courseID uint, date *time.Time) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, r := range f.records {
		if r.CourseID != courseID {
			continue
		}
		if date != nil && !sameDate(r.Date, *date) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListForStudentCourse(studentID, courseID uint, startDate, endDate *time.Time) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, r := range f.records {
		if r.StudentID != studentID || r.CourseID != courseID {
			continue
		}
		if startDate != nil && r.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && r.Date.After(*endDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceStore) CountCoursesMarkedOn(date time.Time) (int64, error) {
	seen := map[uint]bool{}
	for _, r := range f.records {
		if sameDate(r.Date, date) {
			seen[r.CourseID] = true
		}
	}
	return int64(len(seen)), nil
}
