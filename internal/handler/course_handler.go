package handler

import (
	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

type CourseRequest struct {
	CourseCode  string `json:"course_code" binding:"required,max=20"`
	CourseName  string `json:"course_name" binding:"required,max=255"`
	Description string `json:"description"`
	CreditHours int    `json:"credit_hours" binding:"required,min=1,max=10"`
	TeacherID   uint   `json:"teacher_id" binding:"required"`
}

// List retrieves all active courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(currentUserID(c), currentRole(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// Get retrieves a single course by id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(id, currentUserID(c), currentRole(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, course)
}

// MyCourses retrieves the calling teacher's courses
func (h *CourseHandler) MyCourses(c *gin.Context) {
	courses, err := h.courseService.ListByTeacher(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// Create creates a new course. Teachers may only create courses assigned to
// themselves; admins may assign any teacher.
func (h *CourseHandler) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if currentRole(c) == models.RoleTeacher {
		req.TeacherID = currentUserID(c)
	}

	course, err := h.courseService.Create(service.CourseInput{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		CreditHours: req.CreditHours,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Course created successfully",
		"course":  course,
	})
}

// Update edits an existing course
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	course, err := h.courseService.Update(id, service.CourseInput{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		CreditHours: req.CreditHours,
		TeacherID:   req.TeacherID,
	}, currentUserID(c), currentRole(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Course updated successfully",
		"course":  course,
	})
}

// Delete soft deletes a course
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(id, currentUserID(c), currentRole(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Course deleted successfully")
}
