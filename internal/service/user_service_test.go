package service

import (
	"testing"
	"time"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/pkg/token"
)

type userFixture struct {
	svc         *UserService
	users       *fakeUserStore
	courses     *fakeCourseStore
	attendances *fakeAttendanceStore
	tokens      *fakeRefreshTokenStore
}

func newUserFixture() *userFixture {
	users := newFakeUserStore()
	courses := newFakeCourseStore()
	attendances := newFakeAttendanceStore()
	tokens := newFakeRefreshTokenStore()
	return &userFixture{
		svc:         NewUserService(users, courses, attendances, tokens),
		users:       users,
		courses:     courses,
		attendances: attendances,
		tokens:      tokens,
	}
}

func TestDeactivateRevokesLiveTokens(t *testing.T) {
	f := newUserFixture()
	user := f.users.add(models.User{
		FirstName: "Sam",
		Role:      models.RoleStudent,
		Status:    models.StatusActive,
	})
	f.tokens.Create(&models.RefreshToken{
		UserID:    user.ID,
		TokenHash: token.HashRefreshToken("live-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	})

	if err := f.svc.Deactivate(user.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	stored, _ := f.users.FindByID(user.ID)
	if stored.Status != models.StatusInactive {
		t.Fatal("user should be inactive after deactivation")
	}
	if live := f.tokens.liveCountForUser(user.ID, time.Now()); live != 0 {
		t.Fatalf("expected no live tokens after deactivation, got %d", live)
	}
}

func TestReactivateRestoresAccount(t *testing.T) {
	f := newUserFixture()
	user := f.users.add(models.User{
		FirstName: "Sam",
		Role:      models.RoleStudent,
		Status:    models.StatusInactive,
	})

	if err := f.svc.Reactivate(user.ID); err != nil {
		t.Fatalf("Reactivate failed: %v", err)
	}
	stored, _ := f.users.FindByID(user.ID)
	if stored.Status != models.StatusActive {
		t.Fatal("user should be active after reactivation")
	}
}

func TestDeactivateUnknownUser(t *testing.T) {
	f := newUserFixture()

	err := f.svc.Deactivate(999)
	if err == nil {
		t.Fatal("expected deactivating unknown user to fail")
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got kind %d", KindOf(err))
	}
}

func TestListUsersFiltersByRole(t *testing.T) {
	f := newUserFixture()
	f.users.add(models.User{FirstName: "Tina", Role: models.RoleTeacher, Status: models.StatusActive})
	f.users.add(models.User{FirstName: "Sam", Role: models.RoleStudent, Status: models.StatusActive})
	f.users.add(models.User{FirstName: "Ada", Role: models.RoleAdmin, Status: models.StatusActive})

	all, err := f.svc.ListUsers(nil)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}

	role := models.RoleStudent
	students, err := f.svc.ListUsers(&role)
	if err != nil {
		t.Fatalf("filtered ListUsers failed: %v", err)
	}
	if len(students) != 1 || students[0].FirstName != "Sam" {
		t.Fatalf("unexpected filtered users: %+v", students)
	}
}

func TestDashboardCounts(t *testing.T) {
	f := newUserFixture()
	teacher := f.users.add(models.User{Role: models.RoleTeacher, Status: models.StatusActive})
	f.users.add(models.User{Role: models.RoleStudent, Status: models.StatusActive})
	f.users.add(models.User{Role: models.RoleStudent, Status: models.StatusActive})
	f.users.add(models.User{Role: models.RoleStudent, Status: models.StatusInactive})
	course := f.courses.add(models.Course{CourseCode: "CS101", CourseName: "Intro", TeacherID: teacher.ID, Status: models.StatusActive})
	f.courses.add(models.Course{CourseCode: "CS999", CourseName: "Retired", TeacherID: teacher.ID, Status: models.StatusInactive})

	today := time.Now().UTC()
	f.attendances.records = append(f.attendances.records, models.Attendance{
		ID:       1,
		CourseID: course.ID,
		Date:     time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		Status:   models.AttendancePresent,
	})

	summary, err := f.svc.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if summary.Students != 2 || summary.Teachers != 1 {
		t.Fatalf("unexpected user counts: %+v", summary)
	}
	if summary.ActiveCourses != 1 {
		t.Fatalf("expected 1 active course, got %d", summary.ActiveCourses)
	}
	if summary.CoursesMarkedToday != 1 {
		t.Fatalf("expected 1 course marked today, got %d", summary.CoursesMarkedToday)
	}
}
