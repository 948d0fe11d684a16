package services

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mustafagenc/planly/model"
)

// RenderYearlyPDF writes the yearly effort table as an A4 PDF.
func RenderYearlyPDF(w io.Writer, stats model.YearlyStats) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Effort report %d", stats.Year), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Effort Report: %d", stats.Year))
	pdf.Ln(14)

	widths := []float64{50, 45, 45, 40}
	header := []string{"Month", "Annual Plan", "Ad-hoc", "Total"}
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, m := range stats.Months {
		pdf.CellFormat(widths[0], 7, time.Month(m.Month).String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, formatDays(m.AnnualPlanDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, formatDays(m.AdHocDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, formatDays(m.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(widths[0], 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[1], 8, formatDays(stats.AnnualPlanTotal), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[2], 8, formatDays(stats.AdHocTotal), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 8, formatDays(stats.GrandTotal), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}

// formatDays prints whole days without decimals and half days with one.
func formatDays(d float64) string {
	if d == float64(int64(d)) {
		return fmt.Sprintf("%d", int64(d))
	}
	return fmt.Sprintf("%.1f", d)
}
