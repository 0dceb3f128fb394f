package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDFService renders aggregation rows into a tabular PDF document
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

var reportColumns = []struct {
	header string
	width  float64
}{
	{"Student Name", 60},
	{"Reg No", 30},
	{"Course", 60},
	{"Total", 20},
	{"Present", 20},
	{"Absent", 20},
	{"Late", 20},
	{"Percentage", 27},
}

// GenerateAttendanceReport renders the report rows under the given title and
// returns the document bytes
func (s *PDFService) GenerateAttendanceReport(rows []ReportRow, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		footer := fmt.Sprintf("Generated on: %s", time.Now().Format("January 02, 2006 15:04"))
		pdf.CellFormat(0, 10, footer, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Header row
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range reportColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Data rows
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		cells := []string{
			row.StudentName,
			row.RegistrationNumber,
			row.CourseName,
			fmt.Sprintf("%d", row.TotalClasses),
			fmt.Sprintf("%d", row.PresentCount),
			fmt.Sprintf("%d", row.AbsentCount),
			fmt.Sprintf("%d", row.LateCount),
			fmt.Sprintf("%.2f%%", row.Percentage),
		}
		for i, col := range reportColumns {
			align := "L"
			if i >= 3 {
				align = "C"
			}
			pdf.CellFormat(col.width, 8, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, internalErr("rendering report", err)
	}

	return buf.Bytes(), nil
}
