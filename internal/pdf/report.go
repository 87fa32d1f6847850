package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tasktrack/internal/models"
)

// Generator renders task reports (interface kept for test doubles).
type Generator interface {
	GenerateTaskReport(data ReportData) ([]byte, error)
}

type ReportGenerator struct{}

type StatusCount struct {
	Status models.TaskStatus
	Count  int
}

type ReportData struct {
	GeneratedAt time.Time
	Counts      []StatusCount
	Tasks       []models.Task
}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) GenerateTaskReport(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task report", false)
	pdf.SetAuthor("tasktrack", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "TASK REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, data.GeneratedAt.Format("02.01.2006 15:04"), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Totals by status")
	for _, sc := range data.Counts {
		g.kvLine(pdf, string(sc.Status), fmt.Sprintf("%d", sc.Count))
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Tasks")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Status", "B", 0, "L", false, 0, "")
	pdf.CellFormat(65, 7, "Owner", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range data.Tasks {
		pdf.CellFormat(70, 6, t.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, string(t.Status), "", 0, "L", false, 0, "")
		pdf.CellFormat(65, 6, t.UserID, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render task report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(55, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+1)
}
