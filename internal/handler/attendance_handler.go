package handler

import (
	"time"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

type MarkAttendanceRequest struct {
	CourseID uint                   `json:"course_id" binding:"required"`
	Date     string                 `json:"date" binding:"required"`
	Records  []AttendanceEntryInput `json:"records" binding:"required,dive"`
}

type AttendanceEntryInput struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=Present Absent Late"`
	Remarks   string `json:"remarks"`
}

type UpdateAttendanceRequest struct {
	Status  string `json:"status" binding:"required,oneof=Present Absent Late"`
	Remarks string `json:"remarks"`
}

// Mark records attendance for a course roster on one date
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid date, expected YYYY-MM-DD")
		return
	}

	entries := make([]service.AttendanceEntry, 0, len(req.Records))
	for _, record := range req.Records {
		entries = append(entries, service.AttendanceEntry{
			StudentID: record.StudentID,
			Status:    models.AttendanceStatus(record.Status),
			Remarks:   record.Remarks,
		})
	}

	if err := h.attendanceService.Mark(req.CourseID, date, currentUserID(c), entries); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Attendance marked successfully")
}

// Update edits one attendance record's status and remarks
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	record, err := h.attendanceService.Update(id, models.AttendanceStatus(req.Status), req.Remarks, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    "Attendance updated successfully",
		"attendance": record,
	})
}

// MyAttendance retrieves the calling student's attendance, optionally for a
// single course (?course_id=)
func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	courseID, ok := parseOptionalIDQuery(c, "course_id")
	if !ok {
		return
	}

	records, err := h.attendanceService.ListByStudent(currentUserID(c), courseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"attendance": records,
		"count":      len(records),
	})
}

// StudentAttendance retrieves a named student's attendance (staff view)
func (h *AttendanceHandler) StudentAttendance(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courseID, ok := parseOptionalIDQuery(c, "course_id")
	if !ok {
		return
	}

	records, err := h.attendanceService.ListByStudent(studentID, courseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"attendance": records,
		"count":      len(records),
	})
}

// CourseAttendance retrieves a course's attendance, optionally for one date
// (?date=YYYY-MM-DD)
func (h *AttendanceHandler) CourseAttendance(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	records, err := h.attendanceService.ListByCourse(courseID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"attendance": records,
		"count":      len(records),
	})
}
