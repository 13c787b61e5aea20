// Package report renders the weekly PDF report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/huangsam/moodtrack/schema"
)

// Title is the heading printed on the first page.
const Title = "Mood & Energy Weekly Report"

// Data is everything a weekly report needs.
type Data struct {
	Summary    schema.WeeklySummary
	TopNotes   []string
	Points     []schema.TrendPoint
	WindowDays int
	Precision  int
}

// Generator writes weekly reports into a directory.
type Generator struct {
	dir string
	now func() time.Time
}

// NewGenerator creates a generator that writes under dir.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir, now: time.Now}
}

// FileName returns the report file name for the week ending at end.
func FileName(end time.Time) string {
	return fmt.Sprintf("weekly_%s.pdf", end.Format(schema.DateFormat))
}

// WriteWeeklyReport renders the report and returns the path of the written file.
func (g *Generator) WriteWeeklyReport(data Data) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(g.dir, FileName(data.Summary.EndDate))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, false)
	pdf.SetCreationDate(g.now())
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	writeHeader(pdf, data.Summary)
	writeMetrics(pdf, data.Summary, data.Precision)
	writeNotes(pdf, data.TopNotes, tr)

	pdf.AddPage()
	writeTrendChart(pdf, data.Points, data.WindowDays)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}

func writeHeader(pdf *fpdf.Fpdf, s schema.WeeklySummary) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Week: %s to %s",
		s.StartDate.Format(schema.DateFormat), s.EndDate.Format(schema.DateFormat)), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func writeMetrics(pdf *fpdf.Fpdf, s schema.WeeklySummary, precision int) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Key Metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(60, 6, fmt.Sprintf("Average mood: %.*f", precision, s.AvgMood), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, fmt.Sprintf("Average energy: %.*f", precision, s.AvgEnergy), "", 1, "L", false, 0, "")
	pdf.CellFormat(60, 6, fmt.Sprintf("Average stress: %.*f", precision, s.AvgStress), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, fmt.Sprintf("Entries: %d", s.Count), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func writeNotes(pdf *fpdf.Fpdf, notes []string, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Notes (recent)", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if len(notes) == 0 {
		pdf.CellFormat(0, 6, "(none)", "", 1, "L", false, 0, "")
		return
	}
	for _, note := range notes {
		pdf.MultiCell(0, 5, tr("- "+note), "", "L", false)
	}
}

// chart geometry in mm
const (
	chartLeft   = 25.0
	chartTop    = 35.0
	chartWidth  = 160.0
	chartHeight = 100.0
	scoreMin    = 1.0
	scoreMax    = 5.0
)

type seriesStyle struct {
	name    string
	r, g, b int
	value   func(schema.TrendPoint) float64
}

var chartSeries = []seriesStyle{
	{name: "mood", r: 31, g: 119, b: 180, value: func(p schema.TrendPoint) float64 { return p.Mood }},
	{name: "energy", r: 255, g: 127, b: 14, value: func(p schema.TrendPoint) float64 { return p.Energy }},
	{name: "stress", r: 44, g: 160, b: 44, value: func(p schema.TrendPoint) float64 { return p.Stress }},
}

func writeTrendChart(pdf *fpdf.Fpdf, points []schema.TrendPoint, windowDays int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Rolling trend (%d-day window)", windowDays), "", 1, "L", false, 0, "")

	if len(points) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "No trend data.", "", 1, "L", false, 0, "")
		return
	}

	drawAxes(pdf, points)
	first, last := points[0].Date, points[len(points)-1].Date

	for _, s := range chartSeries {
		pdf.SetDrawColor(s.r, s.g, s.b)
		pdf.SetFillColor(s.r, s.g, s.b)
		pdf.SetLineWidth(0.6)
		var prevX, prevY float64
		for i, p := range points {
			x, y := chartX(p.Date, first, last), chartY(s.value(p))
			if i > 0 {
				pdf.Line(prevX, prevY, x, y)
			}
			pdf.Circle(x, y, 0.7, "F")
			prevX, prevY = x, y
		}
	}

	drawLegend(pdf)
}

func drawAxes(pdf *fpdf.Fpdf, points []schema.TrendPoint) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	for v := scoreMin; v <= scoreMax; v++ {
		y := chartY(v)
		pdf.Line(chartLeft, y, chartLeft+chartWidth, y)
		pdf.Text(chartLeft-6, y+1, fmt.Sprintf("%.0f", v))
	}
	pdf.Line(chartLeft, chartTop, chartLeft, chartTop+chartHeight)

	// first, middle and last dates on the x axis
	labelIdx := []int{0, len(points) / 2, len(points) - 1}
	seen := map[int]bool{}
	for _, i := range labelIdx {
		if seen[i] {
			continue
		}
		seen[i] = true
		label := points[i].Date.Format(schema.DateFormat)
		x := chartX(points[i].Date, points[0].Date, points[len(points)-1].Date) - pdf.GetStringWidth(label)/2
		pdf.Text(x, chartTop+chartHeight+5, label)
	}
	pdf.SetTextColor(0, 0, 0)
}

func drawLegend(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "", 9)
	x := chartLeft
	y := chartTop + chartHeight + 12
	for _, s := range chartSeries {
		pdf.SetFillColor(s.r, s.g, s.b)
		pdf.Rect(x, y-2.5, 4, 3, "F")
		pdf.Text(x+6, y, s.name)
		x += 30
	}
}

// chartX places t proportionally between the first and last trend dates.
func chartX(t, first, last time.Time) float64 {
	span := last.Sub(first)
	if span <= 0 {
		return chartLeft + chartWidth/2
	}
	return chartLeft + chartWidth*float64(t.Sub(first))/float64(span)
}

func chartY(v float64) float64 {
	if v < scoreMin {
		v = scoreMin
	}
	if v > scoreMax {
		v = scoreMax
	}
	return chartTop + chartHeight*(scoreMax-v)/(scoreMax-scoreMin)
}
