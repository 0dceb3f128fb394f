package service

import (
	"testing"

	"academic-attendance-backend/internal/models"
)

type enrollmentFixture struct {
	svc         *EnrollmentService
	enrollments *fakeEnrollmentStore
	courses     *fakeCourseStore
	users       *fakeUserStore
}

func newEnrollmentFixture() *enrollmentFixture {
	enrollments := newFakeEnrollmentStore()
	courses := newFakeCourseStore()
	users := newFakeUserStore()
	return &enrollmentFixture{
		svc:         NewEnrollmentService(enrollments, courses, users),
		enrollments: enrollments,
		courses:     courses,
		users:       users,
	}
}

func (f *enrollmentFixture) seedStudentAndCourse() (*models.User, *models.Course) {
	student := f.users.add(models.User{
		FirstName: "Sam",
		LastName:  "Student",
		Role:      models.RoleStudent,
		Status:    models.StatusActive,
	})
	course := f.courses.add(models.Course{
		CourseCode: "CS101",
		CourseName: "Intro to Computing",
		Status:     models.StatusActive,
	})
	return student, course
}

func TestEnrollCreatesActiveEnrollment(t *testing.T) {
	f := newEnrollmentFixture()
	student, course := f.seedStudentAndCourse()

	if err := f.svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	enrollment, _ := f.enrollments.FindActive(student.ID, course.ID)
	if enrollment == nil {
		t.Fatal("expected an active enrollment row")
	}
	if enrollment.EnrolledAt.IsZero() {
		t.Fatal("EnrolledAt should be set")
	}
}

func TestEnrollRejectsDuplicateActiveEnrollment(t *testing.T) {
	f := newEnrollmentFixture()
	student, course := f.seedStudentAndCourse()

	if err := f.svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("first Enroll failed: %v", err)
	}

	err := f.svc.Enroll(student.ID, course.ID)
	if err == nil {
		t.Fatal("expected duplicate enrollment to fail")
	}
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict error, got kind %d", KindOf(err))
	}
	if len(f.enrollments.enrollments) != 1 {
		t.Fatalf("expected a single row, got %d", len(f.enrollments.enrollments))
	}
}

func TestEnrollRejectsNonStudent(t *testing.T) {
	f := newEnrollmentFixture()
	_, course := f.seedStudentAndCourse()
	teacher := f.users.add(models.User{Role: models.RoleTeacher, Status: models.StatusActive})

	err := f.svc.Enroll(teacher.ID, course.ID)
	if err == nil {
		t.Fatal("expected enrolling a teacher to fail")
	}
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got kind %d", KindOf(err))
	}
}

func TestEnrollRejectsInactiveCourse(t *testing.T) {
	f := newEnrollmentFixture()
	student, _ := f.seedStudentAndCourse()
	retired := f.courses.add(models.Course{CourseCode: "CS999", CourseName: "Retired", Status: models.StatusInactive})

	err := f.svc.Enroll(student.ID, retired.ID)
	if err == nil {
		t.Fatal("expected enrolling in inactive course to fail")
	}
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got kind %d", KindOf(err))
	}
}

func TestUnenrollThenReenrollCreatesFreshRow(t *testing.T) {
	f := newEnrollmentFixture()
	student, course := f.seedStudentAndCourse()

	if err := f.svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if err := f.svc.Unenroll(student.ID, course.ID); err != nil {
		t.Fatalf("Unenroll failed: %v", err)
	}
	if active, _ := f.enrollments.FindActive(student.ID, course.ID); active != nil {
		t.Fatal("enrollment should be inactive after unenroll")
	}

	// The inactive row stays as history and a new active row is created.
	if err := f.svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("re-Enroll failed: %v", err)
	}
	if len(f.enrollments.enrollments) != 2 {
		t.Fatalf("expected 2 rows after re-enroll, got %d", len(f.enrollments.enrollments))
	}
	if active, _ := f.enrollments.FindActive(student.ID, course.ID); active == nil {
		t.Fatal("expected an active enrollment after re-enroll")
	}
}

func TestUnenrollWithoutEnrollmentReturnsNotFound(t *testing.T) {
	f := newEnrollmentFixture()
	student, course := f.seedStudentAndCourse()

	err := f.svc.Unenroll(student.ID, course.ID)
	if err == nil {
		t.Fatal("expected unenroll without enrollment to fail")
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got kind %d", KindOf(err))
	}
}

func TestListByCourseBuildsRoster(t *testing.T) {
	f := newEnrollmentFixture()
	student, course := f.seedStudentAndCourse()
	regNo := "CS-2024-007"
	student.RegistrationNumber = &regNo

	f.enrollments.add(models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.StatusActive,
		Student:   student,
	})

	details, err := f.svc.ListByCourse(course.ID)
	if err != nil {
		t.Fatalf("ListByCourse failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 roster entry, got %d", len(details))
	}
	entry := details[0]
	if entry.StudentName != "Sam Student" || entry.RegistrationNumber != "CS-2024-007" {
		t.Fatalf("unexpected roster entry: %+v", entry)
	}
	if entry.CourseCode != "CS101" {
		t.Fatalf("unexpected course code: %q", entry.CourseCode)
	}
}
