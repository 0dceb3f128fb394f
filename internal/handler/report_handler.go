package handler

import (
	"fmt"
	"net/http"
	"time"

	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *service.ReportService
	pdfService    *service.PDFService
}

func NewReportHandler(reportService *service.ReportService, pdfService *service.PDFService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		pdfService:    pdfService,
	}
}

// reportFilters reads the shared optional query parameters
func reportFilters(c *gin.Context) (courseID *uint, start, end *time.Time, ok bool) {
	courseID, ok = parseOptionalIDQuery(c, "course_id")
	if !ok {
		return nil, nil, nil, false
	}
	start, ok = parseDateQuery(c, "start_date")
	if !ok {
		return nil, nil, nil, false
	}
	end, ok = parseDateQuery(c, "end_date")
	if !ok {
		return nil, nil, nil, false
	}
	return courseID, start, end, true
}

// StudentReport returns per-course aggregation rows for one student
func (h *ReportHandler) StudentReport(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courseID, start, end, ok := reportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StudentReport(studentID, courseID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"report": rows,
		"count":  len(rows),
	})
}

// MyReport returns the calling student's own aggregation rows
func (h *ReportHandler) MyReport(c *gin.Context) {
	courseID, start, end, ok := reportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StudentReport(currentUserID(c), courseID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"report": rows,
		"count":  len(rows),
	})
}

// CourseReport returns per-student aggregation rows for one course
func (h *ReportHandler) CourseReport(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	_, start, end, ok := reportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.CourseReport(courseID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"report": rows,
		"count":  len(rows),
	})
}

// CourseReportPDF renders a course's aggregation rows as a PDF download
func (h *ReportHandler) CourseReportPDF(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	_, start, end, ok := reportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.CourseReport(courseID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.servePDF(c, rows, "Course Attendance Report", fmt.Sprintf("course-%d-attendance.pdf", courseID))
}

// StudentReportPDF renders a student's aggregation rows as a PDF download
func (h *ReportHandler) StudentReportPDF(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courseID, start, end, ok := reportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StudentReport(studentID, courseID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.servePDF(c, rows, "Student Attendance Report", fmt.Sprintf("student-%d-attendance.pdf", studentID))
}

func (h *ReportHandler) servePDF(c *gin.Context, rows []service.ReportRow, title, filename string) {
	document, err := h.pdfService.GenerateAttendanceReport(rows, title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}
