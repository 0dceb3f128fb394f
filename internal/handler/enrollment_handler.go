package handler

import (
	"net/http"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

type EnrollRequest struct {
	CourseID  uint `json:"course_id" binding:"required"`
	StudentID uint `json:"student_id"`
}

// enrollmentSubject resolves whose enrollment is being changed: students act
// on themselves, admins must name the student.
func enrollmentSubject(c *gin.Context, studentID uint) (uint, bool) {
	if currentRole(c) == models.RoleStudent {
		return currentUserID(c), true
	}

	if studentID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "student_id is required")
		return 0, false
	}
	return studentID, true
}

// Enroll enrolls a student in a course
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	studentID, ok := enrollmentSubject(c, req.StudentID)
	if !ok {
		return
	}

	if err := h.enrollmentService.Enroll(studentID, req.CourseID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Successfully enrolled in course")
}

// Unenroll deactivates a student's enrollment in a course
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	studentID, ok := enrollmentSubject(c, req.StudentID)
	if !ok {
		return
	}

	if err := h.enrollmentService.Unenroll(studentID, req.CourseID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Successfully unenrolled from course")
}

// MyEnrollments retrieves the calling student's active enrollments
func (h *EnrollmentHandler) MyEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.ListByStudent(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

// CourseRoster retrieves the actively enrolled students of a course
func (h *EnrollmentHandler) CourseRoster(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListByCourse(courseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}
